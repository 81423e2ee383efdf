package service

import (
	"context"
	"time"

	"voteboard/config"
	"voteboard/dao"
	"voteboard/models"
	"voteboard/pkg/jwt"
	"voteboard/pkg/response"
	"voteboard/pkg/snowflake"
	"voteboard/types"

	"golang.org/x/crypto/bcrypt"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
	Register(ctx context.Context, req *types.RegisterRequest) (*types.LoginResponse, error)
}

type AuthService struct {
	UserDAO *dao.UserDAO
	Config  *config.Config
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	user, err := s.UserDAO.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewError(401, "账号或密码错误")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, response.NewError(401, "账号或密码错误")
	}
	return s.issueToken(user)
}

func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.LoginResponse, error) {
	exist, err := s.UserDAO.IsExist(ctx, "email = ?", req.Email)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, response.NewError(400, "邮箱已注册")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:       snowflake.GenID(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (*types.LoginResponse, error) {
	expire := time.Duration(s.Config.Jwt.ExpiresTime) * time.Second
	if expire <= 0 {
		expire = 24 * time.Hour
	}
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.IsAdmin, "access", expire)
	if err != nil {
		return nil, err
	}
	return &types.LoginResponse{
		Token:   token,
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
	}, nil
}
