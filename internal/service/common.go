package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"sort"
	"time"

	"github.com/jinzhu/copier"
)

func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// sortNewestFirst 创建时间降序，同刻按 ID 降序。
// ID 按构造单调递增，因此该序是全序，键集分页在静态数据下稳定。
func sortNewestFirst[T any](items []T, createdAt func(T) time.Time, id func(T) string) {
	sort.Slice(items, func(i, j int) bool {
		ti, tj := createdAt(items[i]), createdAt(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return id(items[i]) > id(items[j])
	})
}

// paginateAfter 键集分页：cursor 为上一页最后一条的 ID，
// 在已排序序列中定位后从其下一条开始取 limit 条；
// 找不到 cursor 时从头开始（静默，不作为错误）。
// nextCursor 取整页最后一条的 ID，页未取满则为 nil。
func paginateAfter[T any](items []T, cursor string, limit int, id func(T) string) (page []T, nextCursor *string, hasMore bool) {
	start := 0
	if cursor != "" {
		for i, item := range items {
			if id(item) == cursor {
				start = i + 1
				break
			}
		}
	}
	if start >= len(items) {
		return nil, nil, false
	}

	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	page = items[start:end]
	hasMore = end < len(items)

	if len(page) == limit {
		last := id(page[len(page)-1])
		nextCursor = &last
	}
	return page, nextCursor, hasMore
}

func buildPostDTO(post *model.Post, author *model.User, isLiked bool) *dto.PostDTO {
	d := &dto.PostDTO{}
	_ = copier.Copy(d, post)
	d.ID = post.ID
	d.UserID = post.UserID
	d.CreatedAt = fmtTime(post.CreatedAt)
	d.IsLiked = isLiked
	if author != nil {
		d.Nickname = author.Nickname
		d.Handle = author.Handle
		d.AvatarURL = author.AvatarURL
	}
	return d
}

func buildUserDTO(user *model.User) *dto.UserDTO {
	d := &dto.UserDTO{}
	_ = copier.Copy(d, user)
	d.CreatedAt = fmtTime(user.CreatedAt)
	return d
}

func buildCommunityDTO(community *model.Community) *dto.CommunityDTO {
	d := &dto.CommunityDTO{}
	_ = copier.Copy(d, community)
	d.CreatedAt = fmtTime(community.CreatedAt)
	return d
}

// dec 计数器减一，下限为零：宁可吞掉重复递减，也不出现负数
func dec(n int) int {
	if n <= 0 {
		return 0
	}
	return n - 1
}
