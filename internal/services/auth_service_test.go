package services

import (
	"context"
	"testing"

	"campuseats/internal/domain"
	"campuseats/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("new user becomes a student", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", "asha@campus.edu").Return(nil, nil)
		users.On("Save", mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(0).(*domain.User).ID = testUserID
		})

		svc := NewAuthService(users, testSecret)
		user, err := svc.Register(context.Background(), RegisterInput{
			Name:      "Asha",
			Email:     "asha@campus.edu",
			CollegeID: "C-1042",
			Password:  "hunter22",
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.RoleStudent, user.Role)
		assert.True(t, user.IsActive)
		assert.NotEqual(t, "hunter22", user.Password, "password must be stored hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22")))
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", "asha@campus.edu").Return(&domain.User{ID: 1, Email: "asha@campus.edu"}, nil)

		svc := NewAuthService(users, testSecret)
		user, err := svc.Register(context.Background(), RegisterInput{Email: "asha@campus.edu", Password: "x"})

		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Nil(t, user)
		users.AssertNotCalled(t, "Save", mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	account := &domain.User{
		ID:       testUserID,
		Email:    "asha@campus.edu",
		Password: "",
		Role:     domain.RoleVendor,
		IsActive: true,
	}

	tests := []struct {
		name          string
		password      string
		user          *domain.User
		expectedError error
	}{
		{name: "valid credentials", password: "hunter22", user: account},
		{name: "wrong password", password: "nope", user: account, expectedError: ErrInvalidCredentials},
		{name: "unknown email", password: "hunter22", user: nil, expectedError: ErrInvalidCredentials},
		{
			name:     "banned account",
			password: "hunter22",
			user: &domain.User{
				ID: testUserID, Email: "asha@campus.edu", Role: domain.RoleStudent, IsActive: false,
			},
			expectedError: ErrUserBanned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mocks.MockUserRepository)
			if tt.user != nil {
				u := *tt.user
				u.Password = hashPassword(t, "hunter22")
				users.On("FindByEmail", "asha@campus.edu").Return(&u, nil)
			} else {
				users.On("FindByEmail", "asha@campus.edu").Return(nil, nil)
			}

			svc := NewAuthService(users, testSecret)
			token, user, err := svc.Login(context.Background(), "asha@campus.edu", tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, user)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, testUserID, user.ID)

			// The token round-trips through the middleware path.
			userID, role, err := svc.ParseToken(token)
			assert.NoError(t, err)
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, domain.RoleVendor, role)
		})
	}
}

func TestAuthService_ParseToken_RejectsForeignSignature(t *testing.T) {
	users := new(mocks.MockUserRepository)
	account := &domain.User{ID: testUserID, Email: "asha@campus.edu", Password: hashPassword(t, "hunter22"), Role: domain.RoleStudent, IsActive: true}
	users.On("FindByEmail", "asha@campus.edu").Return(account, nil)

	issuer := NewAuthService(users, "issuer-secret")
	token, _, err := issuer.Login(context.Background(), "asha@campus.edu", "hunter22")
	assert.NoError(t, err)

	verifier := NewAuthService(users, "other-secret")
	_, _, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = verifier.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
