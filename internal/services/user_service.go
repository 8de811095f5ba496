package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"poultry-backend/internal/auth"
	"poultry-backend/internal/models"
	"poultry-backend/internal/repositories"
)

type UserService struct {
	userRepo   *repositories.UserRepository
	jwtManager *auth.JWTManager
}

func NewUserService(userRepo *repositories.UserRepository, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Signup registers a user. The first account becomes admin; everyone
// after that starts as an employee until an admin promotes them.
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if req.Name == "" || req.Email == "" {
		return nil, errors.New("name and email are required")
	}
	if len(req.Password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, errors.New("failed to process password")
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	role := "employee"
	if count == 0 {
		role = "admin"
	}

	user := &models.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.New("email already registered")
	}

	token, err := s.jwtManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	log.Printf("[Auth] New %s signed up: %s", role, user.Email)
	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, errors.New("invalid email or password")
	}
	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, errors.New("invalid email or password")
	}
	if !user.IsActive {
		return nil, errors.New("account suspended, contact administrator")
	}

	token, err := s.jwtManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" {
		return nil, errors.New("name and email are required")
	}
	if len(req.Password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}
	if req.Role != "admin" && req.Role != "employee" {
		return nil, errors.New("role must be admin or employee")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, errors.New("failed to process password")
	}

	user := &models.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.New("email already registered")
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Role != "" {
		if req.Role != "admin" && req.Role != "employee" {
			return nil, errors.New("role must be admin or employee")
		}
		user.Role = req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			return nil, errors.New("password must be at least 6 characters")
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, errors.New("failed to process password")
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	return s.userRepo.Get(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.userRepo.Delete(ctx, id)
}
