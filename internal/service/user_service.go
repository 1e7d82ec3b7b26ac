package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/security"
	"Ripple/internal/pkg/util"
	"Ripple/internal/repository"
	"context"
	"time"
)

type UserService interface {
	// CreateUser 建立用户档案并下发身份凭据，handle 全局唯一
	CreateUser(ctx context.Context, req *dto.UserCreateDTO) (*dto.UserTokenDTO, error)
	GetUser(ctx context.Context, userID string) (*dto.UserDTO, error)
	GetUserByHandle(ctx context.Context, handle string) (*dto.UserDTO, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.UserCreateDTO) (*dto.UserTokenDTO, error) {
	user := &model.User{
		ID:        util.NewID(),
		Email:     req.Email,
		Nickname:  req.Nickname,
		Handle:    req.Handle,
		Bio:       req.Bio,
		AvatarURL: consts.DefaultAvatarURL,
		CreatedAt: time.Now(),
	}

	claimed, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrUserHandleExist
	}

	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.UserTokenDTO{User: buildUserDTO(user), Token: token}, nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return buildUserDTO(user), nil
}

func (s *userServiceImpl) GetUserByHandle(ctx context.Context, handle string) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return buildUserDTO(user), nil
}
