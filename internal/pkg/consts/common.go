package consts

const (
	MimePrefixVideo = "video"
)

const (
	DefaultAvatarURL = "default_avatar.png"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	NotifyPageSize  = 50
	MinSearchRunes  = 2
)
