package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/adpilot/adpilot-api/infrastructure/database/postgres"
	"github.com/adpilot/adpilot-api/internal/domain"
)

const responseCacheTable = "response_cache"

type ResponseCacheRepository interface {
	// GetByFingerprint returns the stored entry, expired or not, or nil
	// when no entry exists. Freshness is decided by the caller.
	GetByFingerprint(fingerprint string) (*domain.CacheEntry, error)
	// Upsert overwrites any existing entry for the same fingerprint, so
	// concurrent first-time generations of the same URL converge.
	Upsert(entry *domain.CacheEntry) error
	DeleteExpired() (int64, error)
}

type responseCacheRepository struct {
	conn *postgres.Connection
}

func NewResponseCacheRepository(conn *postgres.Connection) ResponseCacheRepository {
	return &responseCacheRepository{
		conn: conn,
	}
}

func (r *responseCacheRepository) GetByFingerprint(fingerprint string) (*domain.CacheEntry, error) {
	query, args, err := squirrel.
		Select("fingerprint", "kind", "result", "created_at", "expires_at").
		From(responseCacheTable).
		Where(squirrel.Eq{"fingerprint": fingerprint}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var entry domain.CacheEntry
	err = r.conn.QueryRow(query, args...).Scan(
		&entry.Fingerprint,
		&entry.Kind,
		&entry.Result,
		&entry.CreatedAt,
		&entry.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *responseCacheRepository) Upsert(entry *domain.CacheEntry) error {
	query, args, err := squirrel.
		Insert(responseCacheTable).
		Columns("fingerprint", "kind", "result", "created_at", "expires_at").
		Values(entry.Fingerprint, entry.Kind, []byte(entry.Result), entry.CreatedAt, entry.ExpiresAt).
		Suffix("ON CONFLICT (fingerprint) DO UPDATE SET kind = EXCLUDED.kind, result = EXCLUDED.result, created_at = EXCLUDED.created_at, expires_at = EXCLUDED.expires_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert cache entry: %w", err)
	}

	return nil
}

func (r *responseCacheRepository) DeleteExpired() (int64, error) {
	res, err := r.conn.Exec("DELETE FROM response_cache WHERE expires_at < now()")
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
