package user

import (
	"context"
	"errors"
	"strings"

	"github.com/OojayFidel/plp-hackathon-2/domain"
	"github.com/OojayFidel/plp-hackathon-2/entities"
	"github.com/OojayFidel/plp-hackathon-2/internal/utils"
	"github.com/OojayFidel/plp-hackathon-2/internal/utils/mailing"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Signup(ctx context.Context, req domain.SignupRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.UserResponse, error)
		Me(ctx context.Context, userID uint) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

func (s *userService) Signup(ctx context.Context, req domain.SignupRequest) (domain.UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) > 120 {
		name = name[:120]
	}
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return domain.UserResponse{}, domain.ErrMissingFields
	}

	if _, err := s.userRepository.GetUserByEmail(ctx, email); err == nil {
		return domain.UserResponse{}, domain.ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		// Two signups racing on the same address: the unique index on email
		// rejects the second insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrEmailExists
		}
		return domain.UserResponse{}, err
	}

	s.sendWelcomeMail(user)

	return toUserResponse(user), nil
}

// Login verifies the password with bcrypt's constant-time comparison. A
// missing account and a wrong password report the same error so callers
// cannot enumerate registered addresses.
func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.UserResponse, error) {
	email := normalizeEmail(req.Email)

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrInvalidCredentials
		}
		return domain.UserResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.UserResponse{}, domain.ErrInvalidCredentials
	}

	return toUserResponse(user), nil
}

func (s *userService) Me(ctx context.Context, userID uint) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) sendWelcomeMail(user *entities.User) {
	if utils.GetConfig("SMTP_HOST") == "" {
		return
	}
	go func() {
		body := "<p>Hi " + user.Name + ", welcome to Recipe Matcher! Start saving the dishes you like.</p>"
		if err := mailing.SendMail(user.Email, "Welcome to Recipe Matcher", body); err != nil {
			log.Warnf("welcome mail to %s failed: %v", user.Email, err)
		}
	}()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
