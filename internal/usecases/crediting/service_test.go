package crediting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adpilot/adpilot-api/infrastructure/repository"
	"github.com/adpilot/adpilot-api/infrastructure/repository/mocks"
	"github.com/adpilot/adpilot-api/internal/config"
	"github.com/adpilot/adpilot-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Credits: config.Credits{
			WelcomeGrant: 10,
		},
	}
}

func TestOpenAccount(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		setup    func(repo *mocks.MockCreditRepository)
		validate func(t *testing.T, account *domain.CreditAccount, err error)
	}{
		{
			name: "opens the account and applies the welcome grant",
			cfg:  testConfig(),
			setup: func(repo *mocks.MockCreditRepository) {
				repo.EXPECT().
					CreateAccount(42, 0).
					Return(&domain.CreditAccount{UserID: 42, Balance: 0}, nil)
				ref := "welcome:42"
				repo.EXPECT().
					Credit(42, 10, domain.ActionWelcomeGrant, "welcome credits", &ref).
					Return(true, 10, nil)
			},
			validate: func(t *testing.T, account *domain.CreditAccount, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 10, account.Balance)
			},
		},
		{
			name: "replayed welcome grant keeps the original balance",
			cfg:  testConfig(),
			setup: func(repo *mocks.MockCreditRepository) {
				repo.EXPECT().
					CreateAccount(42, 0).
					Return(&domain.CreditAccount{UserID: 42, Balance: 0}, nil)
				repo.EXPECT().
					Credit(42, 10, domain.ActionWelcomeGrant, "welcome credits", gomock.Not(gomock.Nil())).
					Return(false, 10, nil)
			},
			validate: func(t *testing.T, account *domain.CreditAccount, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, account.Balance)
			},
		},
		{
			name: "no grant is written when the welcome amount is zero",
			cfg: &config.Config{
				Credits: config.Credits{WelcomeGrant: 0},
			},
			setup: func(repo *mocks.MockCreditRepository) {
				repo.EXPECT().
					CreateAccount(42, 0).
					Return(&domain.CreditAccount{UserID: 42, Balance: 0}, nil)
			},
			validate: func(t *testing.T, account *domain.CreditAccount, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, account.Balance)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockCreditRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo, tt.cfg)

			account, err := service.OpenAccount(42)
			tt.validate(t, account, err)
		})
	}
}

func TestTryConsume(t *testing.T) {
	tests := []struct {
		name     string
		amount   int
		setup    func(repo *mocks.MockCreditRepository)
		validate func(t *testing.T, ok bool, balance int, err error)
	}{
		{
			name:   "consumes when the balance covers the amount",
			amount: 5,
			setup: func(repo *mocks.MockCreditRepository) {
				repo.EXPECT().
					TryConsume(42, 5, domain.ActionCampaignCreation, "google ad copy").
					Return(true, 15, nil)
			},
			validate: func(t *testing.T, ok bool, balance int, err error) {
				assert.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, 15, balance)
			},
		},
		{
			name:   "rejects without error when the balance is short",
			amount: 5,
			setup: func(repo *mocks.MockCreditRepository) {
				repo.EXPECT().
					TryConsume(42, 5, domain.ActionCampaignCreation, "google ad copy").
					Return(false, 3, nil)
			},
			validate: func(t *testing.T, ok bool, balance int, err error) {
				assert.NoError(t, err)
				assert.False(t, ok)
				assert.Equal(t, 3, balance)
			},
		},
		{
			name:   "zero amounts never reach the repository",
			amount: 0,
			setup:  func(repo *mocks.MockCreditRepository) {},
			validate: func(t *testing.T, ok bool, balance int, err error) {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				assert.False(t, ok)
			},
		},
		{
			name:   "missing account maps to the service error",
			amount: 5,
			setup: func(repo *mocks.MockCreditRepository) {
				repo.EXPECT().
					TryConsume(42, 5, domain.ActionCampaignCreation, "google ad copy").
					Return(false, 0, repository.ErrAccountNotFound)
			},
			validate: func(t *testing.T, ok bool, balance int, err error) {
				assert.ErrorIs(t, err, ErrAccountNotFound)
				assert.False(t, ok)
			},
		},
		{
			name:   "database errors are passed through",
			amount: 5,
			setup: func(repo *mocks.MockCreditRepository) {
				repo.EXPECT().
					TryConsume(42, 5, domain.ActionCampaignCreation, "google ad copy").
					Return(false, 0, errors.New("connection reset"))
			},
			validate: func(t *testing.T, ok bool, balance int, err error) {
				assert.Error(t, err)
				assert.False(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockCreditRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo, testConfig())

			ok, balance, err := service.TryConsume(42, tt.amount, domain.ActionCampaignCreation, "google ad copy")
			tt.validate(t, ok, balance, err)
		})
	}
}

func TestGrant(t *testing.T) {
	t.Run("applies a grant keyed by reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCreditRepository(ctrl)
		ref := "cs_test_123"
		repo.EXPECT().
			Credit(42, 100, domain.ActionCreditPurchase, "credit pack purchase", &ref).
			Return(true, 110, nil)

		service := NewService(repo, testConfig())

		applied, err := service.Grant(42, 100, domain.ActionCreditPurchase, "credit pack purchase", "cs_test_123")
		assert.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("replayed reference applies nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCreditRepository(ctrl)
		repo.EXPECT().
			Credit(42, 100, domain.ActionCreditPurchase, "credit pack purchase", gomock.Not(gomock.Nil())).
			Return(false, 110, nil)

		service := NewService(repo, testConfig())

		applied, err := service.Grant(42, 100, domain.ActionCreditPurchase, "credit pack purchase", "cs_test_123")
		assert.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCreditRepository(ctrl)
		service := NewService(repo, testConfig())

		applied, err := service.Grant(42, -5, domain.ActionCreditPurchase, "credit pack purchase", "cs_test_123")
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.False(t, applied)
	})
}

func TestRefund(t *testing.T) {
	t.Run("credits the account without a reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCreditRepository(ctrl)
		repo.EXPECT().
			Credit(42, 5, domain.ActionCreditRefund, "degraded generation refund", nil).
			Return(true, 15, nil)

		service := NewService(repo, testConfig())

		balance, err := service.Refund(42, 5, domain.ActionCreditRefund, "degraded generation refund")
		assert.NoError(t, err)
		assert.Equal(t, 15, balance)
	})
}

func TestCheckBalance(t *testing.T) {
	tests := []struct {
		name     string
		required int
		setup    func(repo *mocks.MockCreditRepository)
		validate func(t *testing.T, ok bool, balance int, err error)
	}{
		{
			name:     "reports coverage when the balance suffices",
			required: 10,
			setup: func(repo *mocks.MockCreditRepository) {
				repo.EXPECT().
					GetAccount(42).
					Return(&domain.CreditAccount{UserID: 42, Balance: 12}, nil)
			},
			validate: func(t *testing.T, ok bool, balance int, err error) {
				assert.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, 12, balance)
			},
		},
		{
			name:     "reports a short balance without error",
			required: 10,
			setup: func(repo *mocks.MockCreditRepository) {
				repo.EXPECT().
					GetAccount(42).
					Return(&domain.CreditAccount{UserID: 42, Balance: 4}, nil)
			},
			validate: func(t *testing.T, ok bool, balance int, err error) {
				assert.NoError(t, err)
				assert.False(t, ok)
				assert.Equal(t, 4, balance)
			},
		},
		{
			name:     "missing account is an error",
			required: 10,
			setup: func(repo *mocks.MockCreditRepository) {
				repo.EXPECT().
					GetAccount(42).
					Return(nil, nil)
			},
			validate: func(t *testing.T, ok bool, balance int, err error) {
				assert.ErrorIs(t, err, ErrAccountNotFound)
				assert.False(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockCreditRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo, testConfig())

			ok, balance, err := service.CheckBalance(42, tt.required)
			tt.validate(t, ok, balance, err)
		})
	}
}

func TestHistory(t *testing.T) {
	t.Run("returns ledger entries for an existing account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCreditRepository(ctrl)
		repo.EXPECT().
			GetAccount(42).
			Return(&domain.CreditAccount{UserID: 42, Balance: 5}, nil)
		repo.EXPECT().
			SumEntries(42).
			Return(5, nil)
		repo.EXPECT().
			ListEntries(42).
			Return([]*domain.CreditLedgerEntry{
				{ID: "a1", UserID: 42, Amount: 10, Action: domain.ActionWelcomeGrant},
				{ID: "a2", UserID: 42, Amount: -5, Action: domain.ActionCampaignCreation},
			}, nil)

		service := NewService(repo, testConfig())

		entries, err := service.History(42)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("ledger drift does not block the history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCreditRepository(ctrl)
		repo.EXPECT().
			GetAccount(42).
			Return(&domain.CreditAccount{UserID: 42, Balance: 7}, nil)
		repo.EXPECT().
			SumEntries(42).
			Return(5, nil)
		repo.EXPECT().
			ListEntries(42).
			Return([]*domain.CreditLedgerEntry{
				{ID: "a1", UserID: 42, Amount: 10, Action: domain.ActionWelcomeGrant},
				{ID: "a2", UserID: 42, Amount: -5, Action: domain.ActionCampaignCreation},
			}, nil)

		service := NewService(repo, testConfig())

		entries, err := service.History(42)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("sum check failure does not block the history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCreditRepository(ctrl)
		repo.EXPECT().
			GetAccount(42).
			Return(&domain.CreditAccount{UserID: 42, Balance: 5}, nil)
		repo.EXPECT().
			SumEntries(42).
			Return(0, errors.New("sum failed"))
		repo.EXPECT().
			ListEntries(42).
			Return([]*domain.CreditLedgerEntry{
				{ID: "a1", UserID: 42, Amount: 5, Action: domain.ActionWelcomeGrant},
			}, nil)

		service := NewService(repo, testConfig())

		entries, err := service.History(42)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("missing account is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCreditRepository(ctrl)
		repo.EXPECT().
			GetAccount(42).
			Return(nil, nil)

		service := NewService(repo, testConfig())

		entries, err := service.History(42)
		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.Nil(t, entries)
	})
}
