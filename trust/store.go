package trust

import (
	"context"
	"time"
)

// UserRecord is the only slice of the host application's user entity this
// package needs.
type UserRecord struct {
	ID        string
	CreatedAt time.Time
}

// UserStore looks up user records in the host application. GetUser returns
// (nil, nil) for an unknown user.
type UserStore interface {
	GetUser(ctx context.Context, userID string) (*UserRecord, error)
}

// MemUserStore is an in-process UserStore for tests and standalone runs.
type MemUserStore struct {
	Users map[string]UserRecord
}

var _ UserStore = (*MemUserStore)(nil)

func NewMemUserStore() *MemUserStore {
	return &MemUserStore{
		Users: make(map[string]UserRecord),
	}
}

func (s *MemUserStore) GetUser(ctx context.Context, userID string) (*UserRecord, error) {
	rec, ok := s.Users[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}
