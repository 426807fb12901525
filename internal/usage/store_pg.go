package usage

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type pgStore struct {
	DB *sql.DB
}

// NewPGStore constructs a Postgres-backed usage store.
func NewPGStore(db *sql.DB) *pgStore {
	return &pgStore{DB: db}
}

func (s *pgStore) Get(ctx context.Context, userID string) (Usage, error) {
	return s.ensure(ctx, userID)
}

func (s *pgStore) EnsurePeriod(ctx context.Context, userID string) (Usage, error) {
	return s.ensure(ctx, userID)
}

// ensure upserts the default row and rolls the window forward if expired.
func (s *pgStore) ensure(ctx context.Context, userID string) (Usage, error) {
	def := defaultUsage()
	const upsert = `
INSERT INTO usage_quotas (user_id, plan, quota_limit, used, resets_at)
VALUES ($1, $2, $3, 0, $4)
ON CONFLICT (user_id) DO UPDATE
SET used = CASE WHEN usage_quotas.resets_at <= now() THEN 0 ELSE usage_quotas.used END,
    resets_at = CASE WHEN usage_quotas.resets_at <= now() THEN $4 ELSE usage_quotas.resets_at END
RETURNING plan, quota_limit, used, resets_at`

	var u Usage
	err := s.DB.QueryRowContext(ctx, upsert, userID, def.Plan, def.Limit, time.Now().UTC().Add(usagePeriod)).
		Scan(&u.Plan, &u.Limit, &u.Used, &u.ResetsAt)
	if err != nil {
		return Usage{}, err
	}
	return u, nil
}

func (s *pgStore) Consume(ctx context.Context, userID string, n int) (Usage, error) {
	if n <= 0 {
		return s.ensure(ctx, userID)
	}
	if _, err := s.ensure(ctx, userID); err != nil {
		return Usage{}, err
	}

	const consume = `
UPDATE usage_quotas
SET used = used + $2
WHERE user_id = $1 AND used + $2 <= quota_limit
RETURNING plan, quota_limit, used, resets_at`

	var u Usage
	err := s.DB.QueryRowContext(ctx, consume, userID, n).
		Scan(&u.Plan, &u.Limit, &u.Used, &u.ResetsAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Usage{}, ErrLimitReached
	}
	if err != nil {
		return Usage{}, err
	}
	return u, nil
}

func (s *pgStore) Reset(ctx context.Context, userID string) (Usage, error) {
	if _, err := s.ensure(ctx, userID); err != nil {
		return Usage{}, err
	}

	const reset = `
UPDATE usage_quotas
SET used = 0, resets_at = $2
WHERE user_id = $1
RETURNING plan, quota_limit, used, resets_at`

	var u Usage
	err := s.DB.QueryRowContext(ctx, reset, userID, time.Now().UTC().Add(usagePeriod)).
		Scan(&u.Plan, &u.Limit, &u.Used, &u.ResetsAt)
	if err != nil {
		return Usage{}, err
	}
	return u, nil
}
