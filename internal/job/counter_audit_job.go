package job

import (
	"Ripple/internal/model"
	"Ripple/internal/pkg/logger"
	"Ripple/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// CounterAuditJob 全量对账冗余计数，按关系记录重算并修复漂移
type CounterAuditJob struct {
	userRepo       repository.UserRepo
	postRepo       repository.PostRepo
	likeRepo       repository.LikeRepo
	commentRepo    repository.CommentRepo
	followRepo     repository.FollowRepo
	communityRepo  repository.CommunityRepo
	membershipRepo repository.MembershipRepo
}

func NewCounterAuditJob(
	userRepo repository.UserRepo,
	postRepo repository.PostRepo,
	likeRepo repository.LikeRepo,
	commentRepo repository.CommentRepo,
	followRepo repository.FollowRepo,
	communityRepo repository.CommunityRepo,
	membershipRepo repository.MembershipRepo,
) *CounterAuditJob {
	return &CounterAuditJob{
		userRepo:       userRepo,
		postRepo:       postRepo,
		likeRepo:       likeRepo,
		commentRepo:    commentRepo,
		followRepo:     followRepo,
		communityRepo:  communityRepo,
		membershipRepo: membershipRepo,
	}
}

func (s *CounterAuditJob) Run() {
	traceID := "job-audit-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	repaired := 0
	repaired += s.auditPosts(ctx)
	repaired += s.auditUsers(ctx)
	repaired += s.auditCommunities(ctx)

	log.InfoContext(ctx, "counter audit finished", "repaired", repaired)
}

func (s *CounterAuditJob) auditPosts(ctx context.Context) int {
	posts, err := s.postRepo.All(ctx)
	if err != nil {
		log.ErrorContext(ctx, "audit scan posts error", "err", err)
		return 0
	}

	repaired := 0
	for _, p := range posts {
		if p.Tombstoned() {
			continue
		}
		likes, err := s.likeRepo.CountByPost(ctx, p.ID)
		if err != nil {
			log.ErrorContext(ctx, "audit count likes error", "pid", p.ID, "err", err)
			continue
		}
		comments, err := s.commentRepo.CountByPost(ctx, p.ID)
		if err != nil {
			log.ErrorContext(ctx, "audit count comments error", "pid", p.ID, "err", err)
			continue
		}
		if p.LikesCount == likes && p.CommentCount == comments {
			continue
		}

		old := *p
		_, err = s.postRepo.Mutate(ctx, p.ID, func(post *model.Post) {
			post.LikesCount = likes
			post.CommentCount = comments
		})
		if err != nil {
			log.ErrorContext(ctx, "audit repair post error", "pid", p.ID, "err", err)
			continue
		}
		repaired++
		log.WarnContext(ctx, "post counter drift repaired", "pid", p.ID,
			"likes", old.LikesCount, "likes_actual", likes,
			"comments", old.CommentCount, "comments_actual", comments)
	}
	return repaired
}

func (s *CounterAuditJob) auditUsers(ctx context.Context) int {
	users, err := s.userRepo.All(ctx)
	if err != nil {
		log.ErrorContext(ctx, "audit scan users error", "err", err)
		return 0
	}

	repaired := 0
	for _, u := range users {
		followers, err := s.followRepo.Followers(ctx, u.ID)
		if err != nil {
			log.ErrorContext(ctx, "audit count followers error", "uid", u.ID, "err", err)
			continue
		}
		following, err := s.followRepo.Following(ctx, u.ID)
		if err != nil {
			log.ErrorContext(ctx, "audit count following error", "uid", u.ID, "err", err)
			continue
		}
		if u.FollowerCount == len(followers) && u.FollowingCount == len(following) {
			continue
		}

		_, err = s.userRepo.Mutate(ctx, u.ID, func(user *model.User) {
			user.FollowerCount = len(followers)
			user.FollowingCount = len(following)
		})
		if err != nil {
			log.ErrorContext(ctx, "audit repair user error", "uid", u.ID, "err", err)
			continue
		}
		repaired++
		log.WarnContext(ctx, "user counter drift repaired", "uid", u.ID,
			"followers_actual", len(followers), "following_actual", len(following))
	}
	return repaired
}

func (s *CounterAuditJob) auditCommunities(ctx context.Context) int {
	communities, err := s.communityRepo.All(ctx)
	if err != nil {
		log.ErrorContext(ctx, "audit scan communities error", "err", err)
		return 0
	}

	repaired := 0
	for _, c := range communities {
		members, err := s.membershipRepo.CountByCommunity(ctx, c.ID)
		if err != nil {
			log.ErrorContext(ctx, "audit count members error", "cid", c.ID, "err", err)
			continue
		}
		if c.MemberCount == members {
			continue
		}

		_, err = s.communityRepo.Mutate(ctx, c.ID, func(community *model.Community) {
			community.MemberCount = members
		})
		if err != nil {
			log.ErrorContext(ctx, "audit repair community error", "cid", c.ID, "err", err)
			continue
		}
		repaired++
		log.WarnContext(ctx, "community counter drift repaired", "cid", c.ID, "members_actual", members)
	}
	return repaired
}
