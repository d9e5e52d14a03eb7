package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/adpilot/adpilot-api/infrastructure/database/postgres"
	"github.com/adpilot/adpilot-api/internal/domain"
)

const (
	profilesTable     = "profiles"
	creditLedgerTable = "credit_ledger"

	ledgerIDChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// LedgerIDLength is the length of generated ledger entry IDs. The bootstrap
// script sizes the credit_ledger.id column from it.
const LedgerIDLength = 14

// ErrAccountNotFound is returned when a credit operation references a user
// without a profile row.
var ErrAccountNotFound = errors.New("credit account not found")

type CreditRepository interface {
	CreateAccount(userID int, initialBalance int) (*domain.CreditAccount, error)
	GetAccount(userID int) (*domain.CreditAccount, error)
	// TryConsume atomically decrements the balance and appends a negative
	// ledger entry. It reports ok=false, leaving the balance untouched, when
	// the balance is short. The returned balance is the current one either way.
	TryConsume(userID int, amount int, action domain.CreditAction, description string) (bool, int, error)
	// Credit increments the balance and appends a positive ledger entry.
	// When referenceID is set the grant is idempotent: a second call with the
	// same referenceID applies nothing and reports applied=false.
	Credit(userID int, amount int, action domain.CreditAction, description string, referenceID *string) (bool, int, error)
	SetHasPaid(userID int, hasPaid bool) error
	ListEntries(userID int) ([]*domain.CreditLedgerEntry, error)
	SumEntries(userID int) (int, error)
}

type creditRepository struct {
	conn *postgres.Connection
}

func NewCreditRepository(conn *postgres.Connection) CreditRepository {
	return &creditRepository{
		conn: conn,
	}
}

func (r *creditRepository) CreateAccount(userID int, initialBalance int) (*domain.CreditAccount, error) {
	account := &domain.CreditAccount{UserID: userID, Balance: initialBalance}

	err := r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		err := tx.QueryRow(
			"INSERT INTO profiles (user_id, credits, has_paid) VALUES ($1, $2, false) RETURNING created_at, updated_at",
			userID, initialBalance,
		).Scan(&account.CreatedAt, &account.UpdatedAt)
		if err != nil {
			return err
		}

		if initialBalance > 0 {
			return r.appendEntry(tx, userID, initialBalance, domain.ActionWelcomeGrant, "welcome credits", nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (r *creditRepository) GetAccount(userID int) (*domain.CreditAccount, error) {
	query, args, err := squirrel.
		Select("user_id", "credits", "has_paid", "created_at", "updated_at").
		From(profilesTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var account domain.CreditAccount
	err = r.conn.QueryRow(query, args...).Scan(
		&account.UserID,
		&account.Balance,
		&account.HasPaid,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &account, nil
}

func (r *creditRepository) TryConsume(userID int, amount int, action domain.CreditAction, description string) (bool, int, error) {
	var (
		ok      bool
		balance int
	)

	err := r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		// Conditional decrement: the balance check and the debit are one
		// statement, so two concurrent requests can never drive it negative.
		err := tx.QueryRow(
			"UPDATE profiles SET credits = credits - $1, updated_at = now() WHERE user_id = $2 AND credits >= $1 RETURNING credits",
			amount, userID,
		).Scan(&balance)
		if err == sql.ErrNoRows {
			err = tx.QueryRow("SELECT credits FROM profiles WHERE user_id = $1", userID).Scan(&balance)
			if err == sql.ErrNoRows {
				return ErrAccountNotFound
			}
			if err != nil {
				return err
			}

			ok = false
			return nil
		}
		if err != nil {
			return err
		}

		if err := r.appendEntry(tx, userID, -amount, action, description, nil); err != nil {
			return err
		}

		ok = true
		return nil
	})
	if err != nil {
		return false, 0, err
	}

	return ok, balance, nil
}

func (r *creditRepository) Credit(userID int, amount int, action domain.CreditAction, description string, referenceID *string) (bool, int, error) {
	var (
		applied bool
		balance int
	)

	err := r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if referenceID != nil {
			id, err := generateLedgerID()
			if err != nil {
				return err
			}

			res, err := tx.Exec(
				"INSERT INTO credit_ledger (id, user_id, amount, action, description, reference_id) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (reference_id) DO NOTHING",
				id, userID, amount, action, description, *referenceID,
			)
			if err != nil {
				return err
			}

			rows, err := res.RowsAffected()
			if err != nil {
				return err
			}
			if rows == 0 {
				// Grant already applied under this reference.
				err = tx.QueryRow("SELECT credits FROM profiles WHERE user_id = $1", userID).Scan(&balance)
				if err == sql.ErrNoRows {
					return ErrAccountNotFound
				}
				if err != nil {
					return err
				}

				applied = false
				return nil
			}
		} else {
			if err := r.appendEntry(tx, userID, amount, action, description, nil); err != nil {
				return err
			}
		}

		err := tx.QueryRow(
			"UPDATE profiles SET credits = credits + $1, updated_at = now() WHERE user_id = $2 RETURNING credits",
			amount, userID,
		).Scan(&balance)
		if err == sql.ErrNoRows {
			return ErrAccountNotFound
		}
		if err != nil {
			return err
		}

		applied = true
		return nil
	})
	if err != nil {
		return false, 0, err
	}

	return applied, balance, nil
}

func (r *creditRepository) SetHasPaid(userID int, hasPaid bool) error {
	query, args, err := squirrel.
		Update(profilesTable).
		Set("has_paid", hasPaid).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	res, err := r.conn.Exec(query, args...)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (r *creditRepository) ListEntries(userID int) ([]*domain.CreditLedgerEntry, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "amount", "action", "description", "reference_id", "created_at").
		From(creditLedgerTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.CreditLedgerEntry, 0)
	for rows.Next() {
		var entry domain.CreditLedgerEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Amount,
			&entry.Action,
			&entry.Description,
			&entry.ReferenceID,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *creditRepository) SumEntries(userID int) (int, error) {
	var sum int
	err := r.conn.QueryRow(
		"SELECT COALESCE(SUM(amount), 0) FROM credit_ledger WHERE user_id = $1",
		userID,
	).Scan(&sum)
	if err != nil {
		return 0, err
	}

	return sum, nil
}

func (r *creditRepository) appendEntry(tx *sql.Tx, userID int, amount int, action domain.CreditAction, description string, referenceID *string) error {
	id, err := generateLedgerID()
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		"INSERT INTO credit_ledger (id, user_id, amount, action, description, reference_id) VALUES ($1, $2, $3, $4, $5, $6)",
		id, userID, amount, action, description, referenceID,
	)
	return err
}

func generateLedgerID() (string, error) {
	return gonanoid.Generate(ledgerIDChars, LedgerIDLength)
}
