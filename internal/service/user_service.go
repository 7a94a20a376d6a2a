package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coachlab.fr/suivicoach/internal/dto"
	"coachlab.fr/suivicoach/internal/model"
	"coachlab.fr/suivicoach/internal/repository"
	"coachlab.fr/suivicoach/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(ctx context.Context, input dto.CreateUserInput) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	ListAthletes(ctx context.Context) ([]*model.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) CreateUser(ctx context.Context, input dto.CreateUserInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)

	role, err := model.ParseRole(input.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvalidInput, err)
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username %q already taken", apperror.ErrConflict, username)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.users.FindAll(ctx)
}

func (s *userService) ListAthletes(ctx context.Context) ([]*model.User, error) {
	return s.users.FindByRole(ctx, model.RoleAthlete)
}
