package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/repository"
	"context"
	"strings"
	"unicode/utf8"
)

const (
	SearchKindPost      = "post"
	SearchKindUser      = "user"
	SearchKindCommunity = "community"
)

type SearchService interface {
	// Search 大小写无关的子串匹配，全量扫描不走索引，
	// 按扫描遇到的顺序取前 limit 条
	Search(ctx context.Context, query, kind string, limit int) (*dto.SearchResultDTO, error)
}

type searchServiceImpl struct {
	postRepo      repository.PostRepo
	userRepo      repository.UserRepo
	communityRepo repository.CommunityRepo
}

func NewSearchService(postRepo repository.PostRepo, userRepo repository.UserRepo, communityRepo repository.CommunityRepo) SearchService {
	return &searchServiceImpl{postRepo: postRepo, userRepo: userRepo, communityRepo: communityRepo}
}

func (s *searchServiceImpl) Search(ctx context.Context, query, kind string, limit int) (*dto.SearchResultDTO, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < consts.MinSearchRunes {
		return nil, ErrQueryTooShort
	}
	if limit <= 0 || limit > consts.MaxPageSize {
		limit = consts.DefaultPageSize
	}

	needle := strings.ToLower(query)
	result := &dto.SearchResultDTO{Query: query, Items: []*dto.SearchItemDTO{}}

	match := func(fields ...string) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), needle) {
				return true
			}
		}
		return false
	}

	if kind == "" || kind == SearchKindPost {
		posts, err := s.postRepo.All(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range posts {
			if len(result.Items) >= limit {
				return result, nil
			}
			if p.Tombstoned() || !match(p.Content) {
				continue
			}
			author, err := s.userRepo.GetByID(ctx, p.UserID)
			if err != nil {
				return nil, err
			}
			result.Items = append(result.Items, &dto.SearchItemDTO{
				Kind: SearchKindPost,
				Post: buildPostDTO(p, author, false),
			})
		}
	}

	if kind == "" || kind == SearchKindUser {
		users, err := s.userRepo.All(ctx)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			if len(result.Items) >= limit {
				return result, nil
			}
			if !match(u.Nickname, u.Handle, u.Bio) {
				continue
			}
			result.Items = append(result.Items, &dto.SearchItemDTO{
				Kind: SearchKindUser,
				User: buildUserDTO(u),
			})
		}
	}

	if kind == "" || kind == SearchKindCommunity {
		communities, err := s.communityRepo.All(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range communities {
			if len(result.Items) >= limit {
				return result, nil
			}
			if !match(c.Name, c.Description) {
				continue
			}
			result.Items = append(result.Items, &dto.SearchItemDTO{
				Kind:      SearchKindCommunity,
				Community: buildCommunityDTO(c),
			})
		}
	}

	return result, nil
}
