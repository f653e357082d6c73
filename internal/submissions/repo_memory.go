package submissions

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryRepo stores submissions in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]Submission
	byUser map[string][]string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]Submission),
		byUser: make(map[string][]string),
	}
}

// Create stores the submission. Ids are write-once.
func (r *MemoryRepo) Create(ctx context.Context, sub Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[sub.ID]; exists {
		return fmt.Errorf("submission %s already exists", sub.ID)
	}
	r.byID[sub.ID] = sub
	r.byUser[sub.UserID] = append(r.byUser[sub.UserID], sub.ID)
	return nil
}

// GetByID returns a submission by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Submission, error) {
	if err := ctx.Err(); err != nil {
		return Submission{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	sub, ok := r.byID[id]
	if !ok {
		return Submission{}, ErrNotFound
	}
	return sub, nil
}

// ListByUser returns a user's submissions newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit, offset = clampPage(limit, offset)

	r.mu.RLock()
	ids := r.byUser[userID]
	subs := make([]Submission, 0, len(ids))
	for _, id := range ids {
		subs = append(subs, r.byID[id])
	}
	r.mu.RUnlock()

	if offset >= len(subs) {
		return []Submission{}, nil
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].SubmittedAt > subs[j].SubmittedAt
	})
	end := len(subs)
	if offset+limit < end {
		end = offset + limit
	}
	return subs[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
