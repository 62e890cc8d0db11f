package trust

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// User is the persisted shape backing GormUserStore.
type User struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
}

// GormUserStore reads user records from the host application's database.
type GormUserStore struct {
	db *gorm.DB
}

var _ UserStore = (*GormUserStore)(nil)

func NewGormUserStore(db *gorm.DB) (*GormUserStore, error) {
	if err := db.AutoMigrate(&User{}); err != nil {
		return nil, fmt.Errorf("migrating users table: %w", err)
	}
	return &GormUserStore{db: db}, nil
}

func (s *GormUserStore) GetUser(ctx context.Context, userID string) (*UserRecord, error) {
	var u User
	err := s.db.WithContext(ctx).First(&u, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching user record: %w", err)
	}
	return &UserRecord{ID: u.ID, CreatedAt: u.CreatedAt}, nil
}
