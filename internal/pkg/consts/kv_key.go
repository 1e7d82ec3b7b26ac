package consts

// 键命名空间：<kind>:<disambiguator>。
// 关系类记录把两个 ID 都编进键里，按前缀即可做定向范围读，
// 代替全命名空间扫描 + 过滤。
const (
	UserKey      = "user:"      // user:<userID>
	HandleKey    = "handle:"    // handle:<lower(handle)> -> userID，唯一性索引
	PostKey      = "post:"      // post:<postID>
	CommentKey   = "comment:"   // comment:<postID>:<commentID>
	LikeKey      = "like:"      // like:<postID>:<userID>
	FollowKey    = "follow:"    // follow:<followerID>:<followingID>
	FollowerKey  = "follower:"  // follower:<followingID>:<followerID>，反向索引
	CommunityKey = "community:" // community:<communityID>
	MemberKey    = "member:"    // member:<communityID>:<userID>
	UserCommKey  = "ucomm:"     // ucomm:<userID>:<communityID>，反向索引
	CommPostKey  = "cpost:"     // cpost:<communityID>:<postID>，社区帖子索引
	NotifyKey    = "notify:"    // notify:<recipientID>:<notifyID>
	VideoKey     = "video:"     // video:<correlationID>
)
