package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/adpilot/adpilot-api/infrastructure/repository/mocks"
	"github.com/adpilot/adpilot-api/internal/config"
	"github.com/adpilot/adpilot-api/internal/domain"
	creditmocks "github.com/adpilot/adpilot-api/internal/usecases/crediting/mocks"
)

func newTestService(t *testing.T) (Authenticator, *mocks.MockUserRepository, *creditmocks.MockCreditManager) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepository(ctrl)
	credits := creditmocks.NewMockCreditManager(ctrl)

	cfg := &config.Config{SecretKey: "test-secret"}

	return NewService(userRepo, credits, cfg), userRepo, credits
}

func TestRegisterUser(t *testing.T) {
	newUser := func() *domain.User {
		return &domain.User{
			Name:         "Ada",
			Lastname:     "Lovelace",
			Email:        "Ada@Example.com",
			PasswordHash: "Str0ng!Pass",
		}
	}

	t.Run("creates the user and opens a credit account", func(t *testing.T) {
		service, userRepo, credits := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("ada@example.com").Return(nil, nil)
		userRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.Equal(t, "ada@example.com", user.Email)
				assert.True(t, user.Active)
				assert.Equal(t, defaultRoleID, user.RoleID)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Str0ng!Pass")))
				user.ID = 42
				return user, nil
			})
		credits.EXPECT().
			OpenAccount(42).
			Return(&domain.CreditAccount{UserID: 42, Balance: 10}, nil)

		user, err := service.RegisterUser(newUser())
		assert.NoError(t, err)
		assert.Equal(t, 42, user.ID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("rejects duplicate emails", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().
			GetUserByEmail("ada@example.com").
			Return(&domain.User{ID: 7, Email: "ada@example.com"}, nil)

		user, err := service.RegisterUser(newUser())
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("ada@example.com").Return(nil, nil)

		weak := newUser()
		weak.PasswordHash = "password"

		user, err := service.RegisterUser(weak)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("rejects incomplete input", func(t *testing.T) {
		service, _, _ := newTestService(t)

		user, err := service.RegisterUser(&domain.User{Email: "ada@example.com"})
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestLoginUser(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Str0ng!Pass"), bcrypt.DefaultCost)

	activeUser := func() *domain.User {
		return &domain.User{
			ID:           42,
			Name:         "Ada",
			Lastname:     "Lovelace",
			Email:        "ada@example.com",
			PasswordHash: string(hashed),
			Active:       true,
			RoleID:       defaultRoleID,
		}
	}

	t.Run("returns a token that validates", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("ada@example.com").Return(activeUser(), nil)

		token, err := service.LoginUser("Ada@Example.com", "Str0ng!Pass")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, "ada@example.com", claims.UserEmail)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("ada@example.com").Return(activeUser(), nil)

		token, err := service.LoginUser("ada@example.com", "wrong")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects a disabled account", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		disabled := activeUser()
		disabled.Active = false
		userRepo.EXPECT().GetUserByEmail("ada@example.com").Return(disabled, nil)

		token, err := service.LoginUser("ada@example.com", "Str0ng!Pass")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("rejects unknown users", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("ada@example.com").Return(nil, nil)

		token, err := service.LoginUser("ada@example.com", "Str0ng!Pass")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("rejects tokens signed with another secret", func(t *testing.T) {
		service, _, _ := newTestService(t)

		claims, err := service.ValidateToken("not.a.token")
		assert.Nil(t, claims)
		assert.Error(t, err)
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _, _ := newTestService(t)

	tests := []struct {
		password string
		valid    bool
	}{
		{"Str0ng!Pass", true},
		{"short1!", false},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoNumbers!!", false},
		{"NoSpecials11", false},
	}

	for _, tt := range tests {
		err := service.ValidatePasswordStrength(tt.password)
		if tt.valid {
			assert.NoError(t, err, tt.password)
		} else {
			assert.Error(t, err, tt.password)
		}
	}
}

func TestChangePassword(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Curr3nt!Pass"), bcrypt.DefaultCost)

	t.Run("updates the hash after verifying the current password", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().
			GetUserByID(42).
			Return(&domain.User{ID: 42, PasswordHash: string(hashed)}, nil)
		userRepo.EXPECT().
			UpdateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("N3w!Password")))
				return nil
			})

		err := service.ChangePassword(42, "Curr3nt!Pass", "N3w!Password")
		assert.NoError(t, err)
	})

	t.Run("rejects a wrong current password", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().
			GetUserByID(42).
			Return(&domain.User{ID: 42, PasswordHash: string(hashed)}, nil)

		err := service.ChangePassword(42, "wrong", "N3w!Password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects reusing the same password", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().
			GetUserByID(42).
			Return(&domain.User{ID: 42, PasswordHash: string(hashed)}, nil)

		err := service.ChangePassword(42, "Curr3nt!Pass", "Curr3nt!Pass")
		assert.ErrorIs(t, err, ErrSamePassword)
	})
}
