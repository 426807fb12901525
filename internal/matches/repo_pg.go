package matches

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new match score row.
func (r *PGRepo) Create(ctx context.Context, score MatchScore) error {
	const query = `
INSERT INTO match_scores (
    id,
    user_id,
    job_title,
    score,
    keyword_score,
    requirement_score,
    evidence_score,
    voice_score,
    matched_keywords,
    total_keywords,
    met_requirements,
    total_requirements,
    verified_claims,
    total_claims,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		score.ID,
		score.UserID,
		score.JobTitle,
		score.Score,
		score.KeywordScore,
		score.RequirementScore,
		score.EvidenceScore,
		score.VoiceScore,
		score.MatchedKeywords,
		score.TotalKeywords,
		score.MetRequirements,
		score.TotalRequirements,
		score.VerifiedClaims,
		score.TotalClaims,
		score.CreatedAt,
	)
	return err
}

const scoreColumns = `id, user_id, job_title, score, keyword_score, requirement_score, evidence_score, voice_score,
matched_keywords, total_keywords, met_requirements, total_requirements, verified_claims, total_claims, created_at`

// GetByID returns a match score by ID scoped to a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (MatchScore, error) {
	const query = `
SELECT ` + scoreColumns + `
FROM match_scores
WHERE user_id = $1 AND id = $2`

	row := r.DB.QueryRowContext(ctx, query, userID, id)
	score, err := scanScore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return MatchScore{}, ErrNotFound
	}
	return score, err
}

// ListByUser returns match scores for a user, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]MatchScore, error) {
	const query = `
SELECT ` + scoreColumns + `
FROM match_scores
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []MatchScore{}
	for rows.Next() {
		score, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, score)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScore(row rowScanner) (MatchScore, error) {
	var score MatchScore
	var jobTitle sql.NullString
	err := row.Scan(
		&score.ID,
		&score.UserID,
		&jobTitle,
		&score.Score,
		&score.KeywordScore,
		&score.RequirementScore,
		&score.EvidenceScore,
		&score.VoiceScore,
		&score.MatchedKeywords,
		&score.TotalKeywords,
		&score.MetRequirements,
		&score.TotalRequirements,
		&score.VerifiedClaims,
		&score.TotalClaims,
		&score.CreatedAt,
	)
	if err != nil {
		return MatchScore{}, err
	}
	score.JobTitle = jobTitle.String
	return score, nil
}
