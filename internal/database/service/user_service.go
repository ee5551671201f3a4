package service

import (
	"log/slog"

	"github.com/doualadrive/backend-go/internal/database/models"
	"github.com/doualadrive/backend-go/internal/database/repository"
)

// NewUserRequest carries the fields of a lazily provisioned user.
type NewUserRequest struct {
	KeycloakID string
	Email      string
	Name       string
	Role       string
}

// EditProfileRequest carries a partial profile update; nil fields are left
// untouched.
type EditProfileRequest struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	FidelityPoints *int    `json:"fidelity_points"`
}

// UserService defines the interface for user business logic
type UserService interface {
	GetAllUsers() ([]UserDTO, error)
	GetUserByUsername(username string) (*UserDTO, error)
	GetUserByKeycloakID(keycloakID string) (*UserDTO, error)
	CreateUser(req NewUserRequest) (*UserDTO, error)
	UpdateUserProfile(id string, req EditProfileRequest) (*UserDTO, error)
	UpdateUserProfilePicture(id, filename string) (*UserDTO, error)
	DeleteUserByID(id string) error
}

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userService) GetAllUsers() ([]UserDTO, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	dtos := make([]UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, toUserDTO(&users[i]))
	}
	return dtos, nil
}

func (s *userService) GetUserByUsername(username string) (*UserDTO, error) {
	user, err := s.userRepo.FindByName(username)
	if err != nil {
		return nil, err
	}
	dto := toUserDTO(user)
	return &dto, nil
}

func (s *userService) GetUserByKeycloakID(keycloakID string) (*UserDTO, error) {
	user, err := s.userRepo.FindByKeycloakID(keycloakID)
	if err != nil {
		return nil, err
	}
	dto := toUserDTO(user)
	return &dto, nil
}

func (s *userService) CreateUser(req NewUserRequest) (*UserDTO, error) {
	s.logger.Info("👤 [UserService] Provisioning user", "email", req.Email, "role", req.Role)

	user := models.User{
		KeycloakID:     req.KeycloakID,
		Email:          req.Email,
		Name:           req.Name,
		Phone:          nil,
		FidelityPoints: 0,
		Role:           req.Role,
	}

	if err := s.userRepo.Create(&user); err != nil {
		s.logger.Error("❌ [UserService] Failed to create user", "email", req.Email, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] User created", "user_id", user.ID)
	dto := toUserDTO(&user)
	return &dto, nil
}

func (s *userService) UpdateUserProfile(id string, req EditProfileRequest) (*UserDTO, error) {
	s.logger.Info("✏️ [UserService] Updating user profile", "user_id", id)

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.FidelityPoints != nil {
		user.FidelityPoints = *req.FidelityPoints
	}

	if err := s.userRepo.Update(user); err != nil {
		s.logger.Error("❌ [UserService] Failed to update user profile", "user_id", id, "error", err)
		return nil, err
	}

	dto := toUserDTO(user)
	return &dto, nil
}

func (s *userService) UpdateUserProfilePicture(id, filename string) (*UserDTO, error) {
	s.logger.Info("🖼️ [UserService] Updating profile picture", "user_id", id)

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	user.ProfilePicture = &filename
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	dto := toUserDTO(user)
	return &dto, nil
}

func (s *userService) DeleteUserByID(id string) error {
	s.logger.Info("🗑️ [UserService] Deleting user", "user_id", id)

	if _, err := s.userRepo.FindByID(id); err != nil {
		return err
	}
	return s.userRepo.DeleteByID(id)
}
