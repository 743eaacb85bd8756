package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Diyary311/onlineMenu/entity"
	"github.com/Diyary311/onlineMenu/repository"
	"github.com/Diyary311/onlineMenu/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService registers users and issues signed tokens on login.
type AuthService struct {
	Users     *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, jwtSecret: secret, jwtTTL: ttl}
}

// Register stores a new user with a bcrypt-hashed password. Role defaults to
// User when blank.
func (s *AuthService) Register(username, password, role string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, validationf("Username and password are required.")
	}

	count, err := s.Users.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &ConflictError{Message: "Username already exists."}
	}

	role = strings.TrimSpace(role)
	if role == "" {
		role = entity.RoleUser
	}
	if role != entity.RoleAdmin && role != entity.RoleUser {
		return nil, validationf("Invalid role.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a token carrying the username
// and role claims.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return "", nil, validationf("Username and password are required.")
	}

	user, err := s.Users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrNotFound
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.Username, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ListUsers returns every account for the admin console.
func (s *AuthService) ListUsers() ([]entity.User, error) {
	return s.Users.FindAll()
}
