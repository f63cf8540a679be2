package services

import (
	"errors"
	"fmt"

	"github.com/aris220/contact-management-api/internal/config"
	"github.com/aris220/contact-management-api/internal/dto"
	"github.com/aris220/contact-management-api/internal/models"
	"github.com/aris220/contact-management-api/internal/validation"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken = errors.New("username already registered")
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so login failures never reveal whether a username exists.
	ErrInvalidCredentials = errors.New("username or password is wrong")
)

type UserService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewUserService(db *gorm.DB, cfg *config.Config) *UserService {
	return &UserService{db: db, cfg: cfg}
}

func (s *UserService) Register(req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	var existing models.User
	if err := s.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: req.Username,
		Password: string(hash),
		Name:     req.Name,
	}

	if err := s.db.Create(&user).Error; err != nil {
		// Two concurrent registrations race on the primary key; the storage
		// layer rejects the second insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp := dto.ToUserResponse(&user)
	return &resp, nil
}

// Login verifies the credentials and rotates the stored bearer token. The
// previous token, if any, stops working immediately.
func (s *UserService) Login(req *dto.LoginUserRequest) (*dto.UserResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.db.Model(&user).Update("token", token).Error; err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}
	user.Token = &token

	resp := dto.ToUserResponseWithToken(&user)
	return &resp, nil
}

func (s *UserService) Current(user *models.User) *dto.UserResponse {
	resp := dto.ToUserResponse(user)
	return &resp
}

func (s *UserService) Update(user *models.User, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.cfg.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *UserService) Logout(user *models.User) error {
	if err := s.db.Model(user).Update("token", nil).Error; err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	user.Token = nil
	return nil
}
