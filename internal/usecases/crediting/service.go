package crediting

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/adpilot/adpilot-api/infrastructure/repository"
	"github.com/adpilot/adpilot-api/internal/config"
	"github.com/adpilot/adpilot-api/internal/domain"
)

// CreditManager guards every billable operation. Balances live in the
// profiles table and every movement is mirrored by an append-only ledger
// entry, so the balance can always be recomputed from history.
type CreditManager interface {
	OpenAccount(userID int) (*domain.CreditAccount, error)
	Balance(userID int) (*domain.CreditAccount, error)
	CheckBalance(userID int, required int) (bool, int, error)
	TryConsume(userID int, amount int, action domain.CreditAction, description string) (bool, int, error)
	Refund(userID int, amount int, action domain.CreditAction, description string) (int, error)
	Grant(userID int, amount int, action domain.CreditAction, description string, referenceID string) (bool, error)
	MarkPaid(userID int) error
	History(userID int) ([]*domain.CreditLedgerEntry, error)
}

type Service struct {
	creditRepo repository.CreditRepository
	cfg        *config.Config
}

func NewService(creditRepo repository.CreditRepository, cfg *config.Config) CreditManager {
	return &Service{
		creditRepo: creditRepo,
		cfg:        cfg,
	}
}

// OpenAccount creates a zero-balance account and applies the welcome grant
// as a regular ledger entry. The grant is keyed by user so retried
// registrations never credit twice.
func (s *Service) OpenAccount(userID int) (*domain.CreditAccount, error) {
	account, err := s.creditRepo.CreateAccount(userID, 0)
	if err != nil {
		return nil, err
	}

	grant := s.cfg.Credits.WelcomeGrant
	if grant <= 0 {
		return account, nil
	}

	referenceID := fmt.Sprintf("welcome:%d", userID)
	applied, balance, err := s.creditRepo.Credit(userID, grant, domain.ActionWelcomeGrant, "welcome credits", &referenceID)
	if err != nil {
		return nil, err
	}

	if applied {
		account.Balance = balance
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"amount":  grant,
		}).Info("credits: welcome grant applied")
	}

	return account, nil
}

func (s *Service) Balance(userID int) (*domain.CreditAccount, error) {
	account, err := s.creditRepo.GetAccount(userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// CheckBalance is advisory: it reports whether the balance covers the
// required amount without reserving anything. Callers must still use
// TryConsume before delivering billable work.
func (s *Service) CheckBalance(userID int, required int) (bool, int, error) {
	account, err := s.Balance(userID)
	if err != nil {
		return false, 0, err
	}
	return account.Balance >= required, account.Balance, nil
}

// TryConsume deducts the amount and records the debit in one atomic step.
// It reports ok=false with the current balance when credit is short; the
// balance is never driven negative.
func (s *Service) TryConsume(userID int, amount int, action domain.CreditAction, description string) (bool, int, error) {
	if amount <= 0 {
		return false, 0, ErrInvalidAmount
	}

	ok, balance, err := s.creditRepo.TryConsume(userID, amount, action, description)
	if err != nil {
		if err == repository.ErrAccountNotFound {
			return false, 0, ErrAccountNotFound
		}
		return false, 0, err
	}

	if !ok {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"amount":  amount,
			"balance": balance,
			"action":  action,
		}).Info("credits: consume rejected, balance too low")
		return false, balance, nil
	}

	return true, balance, nil
}

// Refund returns credits consumed for work that was not delivered.
func (s *Service) Refund(userID int, amount int, action domain.CreditAction, description string) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	_, balance, err := s.creditRepo.Credit(userID, amount, action, description, nil)
	if err != nil {
		if err == repository.ErrAccountNotFound {
			return 0, ErrAccountNotFound
		}
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"amount":  amount,
	}).Info("credits: refund applied")

	return balance, nil
}

// Grant credits the account once per referenceID. Replays of the same
// reference (a webhook redelivery, a retried job) report applied=false and
// change nothing.
func (s *Service) Grant(userID int, amount int, action domain.CreditAction, description string, referenceID string) (bool, error) {
	if amount <= 0 {
		return false, ErrInvalidAmount
	}

	applied, _, err := s.creditRepo.Credit(userID, amount, action, description, &referenceID)
	if err != nil {
		if err == repository.ErrAccountNotFound {
			return false, ErrAccountNotFound
		}
		return false, err
	}

	if !applied {
		logrus.WithFields(logrus.Fields{
			"user_id":      userID,
			"reference_id": referenceID,
		}).Warn("credits: duplicate grant ignored")
	}

	return applied, nil
}

func (s *Service) MarkPaid(userID int) error {
	return s.creditRepo.SetHasPaid(userID, true)
}

func (s *Service) History(userID int) ([]*domain.CreditLedgerEntry, error) {
	account, err := s.creditRepo.GetAccount(userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	// The denormalized balance must equal the running sum of ledger
	// amounts. Drift means a write bypassed the ledger; surface it loudly
	// but keep serving the history.
	sum, err := s.creditRepo.SumEntries(userID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Warn("crediting: could not verify ledger sum")
	} else if sum != account.Balance {
		logrus.WithFields(logrus.Fields{
			"user_id":    userID,
			"balance":    account.Balance,
			"ledger_sum": sum,
		}).Warn("crediting: balance drifted from ledger sum")
	}

	return s.creditRepo.ListEntries(userID)
}
