package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/adpilot/adpilot-api/infrastructure/database/postgres"
	"github.com/adpilot/adpilot-api/internal/domain"
)

const appPromptsTable = "app_prompts"

type PromptRepository interface {
	GetByKey(key string) (*domain.PromptTemplate, error)
	List() ([]*domain.PromptTemplate, error)
	// Update replaces the prompt bodies and bumps the version.
	Update(key string, systemPrompt, userPrompt string) error
}

type promptRepository struct {
	conn *postgres.Connection
}

func NewPromptRepository(conn *postgres.Connection) PromptRepository {
	return &promptRepository{
		conn: conn,
	}
}

func (r *promptRepository) GetByKey(key string) (*domain.PromptTemplate, error) {
	query, args, err := squirrel.
		Select("key", "version", "system_prompt", "user_prompt", "system_owned", "updated_at").
		From(appPromptsTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var tmpl domain.PromptTemplate
	err = r.conn.QueryRow(query, args...).Scan(
		&tmpl.Key,
		&tmpl.Version,
		&tmpl.SystemPrompt,
		&tmpl.UserPrompt,
		&tmpl.SystemOwned,
		&tmpl.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &tmpl, nil
}

func (r *promptRepository) List() ([]*domain.PromptTemplate, error) {
	query, args, err := squirrel.
		Select("key", "version", "system_prompt", "user_prompt", "system_owned", "updated_at").
		From(appPromptsTable).
		OrderBy("key ASC").
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

	templates := make([]*domain.PromptTemplate, 0)
	for rows.Next() {
		var tmpl domain.PromptTemplate
		if err := rows.Scan(
			&tmpl.Key,
			&tmpl.Version,
			&tmpl.SystemPrompt,
			&tmpl.UserPrompt,
			&tmpl.SystemOwned,
			&tmpl.UpdatedAt,
		); err != nil {
			return nil, err
		}
		templates = append(templates, &tmpl)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *promptRepository) Update(key string, systemPrompt, userPrompt string) error {
	query, args, err := squirrel.
		Update(appPromptsTable).
		Set("system_prompt", systemPrompt).
		Set("user_prompt", userPrompt).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"key": key}).
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
		return sql.ErrNoRows
	}

	return nil
}
