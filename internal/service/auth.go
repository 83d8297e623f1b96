package service

import (
	"context"
	"errors"
	"fmt"
	"freshpack-backend/internal/client"
	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/model"
	"freshpack-backend/internal/repository"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const passwordCost = 10

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	tokens   TokenManager
	mail     client.MailClient
	logger   *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens TokenManager,
	mail client.MailClient,
	logger *zap.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		mail:     mail,
		logger:   logger,
	}
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.TrimSpace(req.Email)
	if req.Name == "" || email == "" || req.Password == "" {
		return nil, validationError("Name, email, and password are required")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return nil, newError(ErrConflict, "User already exists with this email")
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    email,
		Phone:    req.Phone,
		Password: hashed,
		Role:     model.RoleCustomer,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newError(ErrConflict, "User already exists with this email")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.sendWelcome(ctx, user)

	return &dto.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    dto.NewUserSummary(user),
	}, nil
}

func (s *authServiceImpl) sendWelcome(ctx context.Context, user *model.User) {
	err := s.mail.Send(ctx, user.Email,
		"Welcome to FreshGrupo",
		fmt.Sprintf("<p>Hi %s,</p><p>Your FreshGrupo account is ready.</p>", user.Name),
		fmt.Sprintf("Hi %s,\n\nYour FreshGrupo account is ready.", user.Name),
	)
	if err != nil {
		s.logger.Warn("send welcome mail", zap.Uint("user_id", user.ID), zap.Error(err))
	}
}

func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.respond(user)
}

func (s *authServiceImpl) AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, newError(ErrForbidden, "Access denied. Admin only.")
	}

	return s.respond(user)
}

func (s *authServiceImpl) authenticate(ctx context.Context, req *dto.LoginRequest) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(ErrUnauthorized, "Invalid credentials")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, newError(ErrUnauthorized, "Invalid credentials")
	}

	if !user.IsActive {
		return nil, newError(ErrForbidden, "Account is deactivated")
	}

	return user, nil
}

func (s *authServiceImpl) respond(user *model.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserSummary(user),
	}, nil
}
