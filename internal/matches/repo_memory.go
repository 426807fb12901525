package matches

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database
// is configured and in tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]MatchScore // userID -> scores
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]MatchScore),
	}
}

// Create stores a score run for a user.
func (r *MemoryRepo) Create(ctx context.Context, score MatchScore) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[score.UserID] = append(r.data[score.UserID], score)
	return nil
}

// GetByID returns a score run by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, id string) (MatchScore, error) {
	if err := ctx.Err(); err != nil {
		return MatchScore{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, score := range r.data[userID] {
		if score.ID == id {
			return score, nil
		}
	}
	return MatchScore{}, ErrNotFound
}

// ListByUser returns score runs for a user, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]MatchScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	userScores := r.data[userID]
	r.mu.RUnlock()

	if len(userScores) == 0 || offset >= len(userScores) {
		return []MatchScore{}, nil
	}

	scores := make([]MatchScore, len(userScores))
	copy(scores, userScores)
	sort.Slice(scores, func(i, j int) bool {
		return scores[i].CreatedAt.After(scores[j].CreatedAt)
	})

	end := len(scores)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return scores[offset:end], nil
}
