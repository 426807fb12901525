package matches

import "context"

// Repo defines persistence operations for match scores.
type Repo interface {
	Create(ctx context.Context, score MatchScore) error
	GetByID(ctx context.Context, userID, id string) (MatchScore, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]MatchScore, error)
}
