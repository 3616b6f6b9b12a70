package services

import (
	"context"
	"errors"
	"time"

	"campuseats/internal/domain"
	"campuseats/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserBanned         = errors.New("account is disabled")
	ErrInvalidToken       = errors.New("invalid authentication token")
)

const tokenTTL = 7 * 24 * time.Hour

type RegisterInput struct {
	Name      string
	Email     string
	CollegeID string
	Password  string
	Phone     string
}

type AuthService struct {
	users  repository.UserRepository
	secret []byte
}

func NewAuthService(users repository.UserRepository, secret string) *AuthService {
	return &AuthService{users: users, secret: []byte(secret)}
}

func (a *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	existing, err := a.users.FindByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:      input.Name,
		Email:     input.Email,
		CollegeID: input.CollegeID,
		Password:  string(hash),
		Phone:     input.Phone,
		Role:      domain.RoleStudent,
		IsActive:  true,
	}

	if err := a.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (a *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := a.users.FindByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, ErrUserBanned
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": user.ID,
		"role":   string(user.Role),
		"iat":    now.Unix(),
		"exp":    now.Add(tokenTTL).Unix(),
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}

// ParseToken validates a bearer token and returns the caller's id and
// role from its claims.
func (a *AuthService) ParseToken(tokenString string) (uint64, domain.Role, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidToken
	}

	userID, ok := claims["userId"].(float64)
	if !ok || userID <= 0 {
		return 0, "", ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok {
		return 0, "", ErrInvalidToken
	}

	return uint64(userID), domain.Role(role), nil
}
