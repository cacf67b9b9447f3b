package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"edd-calculator/internal/domain/calculations"
)

type CalculationsRepo struct {
	db *sql.DB
}

func NewCalculationsRepo(db *sql.DB) *CalculationsRepo {
	return &CalculationsRepo{db: db}
}

func (r *CalculationsRepo) Create(ctx context.Context, c calculations.Calculation) error {
	input, result, err := encodeJSONB(c)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO calculations (
			id, user_id, kind,
			input, result, summary,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		c.ID,
		c.UserID,
		string(c.Kind),
		input,
		result,
		c.Summary,
		c.CreatedAt,
	)
	return err
}

func (r *CalculationsRepo) GetByID(ctx context.Context, id string) (calculations.Calculation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return calculations.Calculation{}, calculations.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, kind, input, result, summary, created_at
		FROM calculations
		WHERE id::text = $1
	`, id)

	c, err := scanCalculation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return calculations.Calculation{}, calculations.ErrNotFound
	}
	return c, err
}

func (r *CalculationsRepo) ListByUser(ctx context.Context, userID string, limit int) ([]calculations.Calculation, error) {
	userID = strings.TrimSpace(userID)
	out := make([]calculations.Calculation, 0)
	if userID == "" {
		return out, nil
	}
	if limit <= 0 {
		limit = calculations.DefaultHistoryLimit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, kind, input, result, summary, created_at
		FROM calculations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// encodeJSONB serializa las columnas input/result.
func encodeJSONB(c calculations.Calculation) (input, result []byte, err error) {
	input, err = json.Marshal(c.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal input: %w", err)
	}
	result, err = json.Marshal(c.Result)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal result: %w", err)
	}
	return input, result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCalculation(s rowScanner) (calculations.Calculation, error) {
	var (
		c             calculations.Calculation
		kind          string
		input, result []byte
	)
	if err := s.Scan(
		&c.ID,
		&c.UserID,
		&kind,
		&input,
		&result,
		&c.Summary,
		&c.CreatedAt,
	); err != nil {
		return calculations.Calculation{}, err
	}

	c.Kind = calculations.Kind(kind)
	if err := json.Unmarshal(input, &c.Input); err != nil {
		return calculations.Calculation{}, fmt.Errorf("unmarshal input: %w", err)
	}
	if err := json.Unmarshal(result, &c.Result); err != nil {
		return calculations.Calculation{}, fmt.Errorf("unmarshal result: %w", err)
	}
	return c, nil
}
