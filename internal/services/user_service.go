package services

import (
	"context"
	"errors"
	"strings"

	"jobportal/internal/auth"
	"jobportal/internal/models"
	"jobportal/internal/repositories"
	"jobportal/internal/services/dto"
	"jobportal/internal/validator"
	"jobportal/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(ctx context.Context, db *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, db *gorm.DB, id string) (*dto.UserResponse, error)
	GetByUsername(ctx context.Context, db *gorm.DB, username string) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, db *gorm.DB) ([]*dto.UserResponse, error)
	UpdateUser(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, db *gorm.DB, id string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// checkRoleAndCompany - роль из перечисления, у JOB_HIRER обязательна компания
func checkRoleAndCompany(role, companyName string) (models.UserRole, error) {
	parsed, err := models.ParseUserRole(role)
	if err != nil {
		return "", fieldError("user", "role", "Role must be either JOB_SEEKER or JOB_HIRER")
	}
	if parsed == models.UserRoleJobHirer && validator.IsBlank(companyName) {
		return "", fieldError("user", "companyName", "Company name is required for JOB_HIRER")
	}
	return parsed, nil
}

func (s *userService) CreateUser(ctx context.Context, db *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	role, err := checkRoleAndCompany(req.Role, req.CompanyName)
	if err != nil {
		return nil, err
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, fieldError("user", "password", err.Error())
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	// Сначала имя пользователя, потом email
	exists, err := s.userRepo.ExistsByUsername(db, username)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.Conflict("user", "username", "Username already exists")
	}

	exists, err = s.userRepo.ExistsByEmail(db, email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.Conflict("user", "email", "Email already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Phone:        strings.TrimSpace(req.Phone),
		CompanyName:  strings.TrimSpace(req.CompanyName),
	}
	if err := s.userRepo.Create(db, user); err != nil {
		return nil, handleUserError(err, "")
	}

	return dto.NewUserResponse(user), nil
}

func (s *userService) GetUser(ctx context.Context, db *gorm.DB, id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		return nil, handleUserError(err, id)
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) GetByUsername(ctx context.Context, db *gorm.DB, username string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByUsername(db, username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "user", "User not found with username: "+username)
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) ListUsers(ctx context.Context, db *gorm.DB) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponses(users), nil
}

func (s *userService) UpdateUser(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		return nil, handleUserError(err, id)
	}

	role, err := checkRoleAndCompany(req.Role, req.CompanyName)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	// Уникальность проверяем только для изменившихся значений
	if username != user.Username {
		exists, err := s.userRepo.ExistsByUsername(db, username)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if exists {
			return nil, apperrors.Conflict("user", "username", "Username already exists")
		}
	}
	if email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(db, email)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if exists {
			return nil, apperrors.Conflict("user", "email", "Email already exists")
		}
	}

	user.Username = username
	user.Email = email
	user.Role = role
	user.Phone = strings.TrimSpace(req.Phone)
	user.CompanyName = strings.TrimSpace(req.CompanyName)

	if req.Password != "" {
		if err := auth.ValidatePassword(req.Password); err != nil {
			return nil, fieldError("user", "password", err.Error())
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, handleUserError(err, id)
	}

	updated, err := s.userRepo.FindByID(db, id)
	if err != nil {
		return nil, handleUserError(err, id)
	}
	return dto.NewUserResponse(updated), nil
}

// DeleteUser идемпотентен: отсутствующий id не ошибка
func (s *userService) DeleteUser(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.userRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
