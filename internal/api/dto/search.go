package dto

// SearchItemDTO 搜索结果条目，kind 区分实体类型
type SearchItemDTO struct {
	Kind      string        `json:"kind"` // post/user/community
	Post      *PostDTO      `json:"post,omitempty"`
	User      *UserDTO      `json:"user,omitempty"`
	Community *CommunityDTO `json:"community,omitempty"`
}

// SearchResultDTO 搜索返回
type SearchResultDTO struct {
	Query string           `json:"query"`
	Items []*SearchItemDTO `json:"items"`
}
