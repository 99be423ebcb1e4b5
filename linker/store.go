package linker

import (
	"context"
	"errors"
	"time"

	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
	"gorm.io/gorm"
)

// GormStore backs the linker with the portal database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// FindByEmail picks the first record when several share an email. Duplicate records
// are a data problem this layer does not resolve; see DESIGN.md.
func (s *GormStore) FindByEmail(ctx context.Context, email string) (*models.Client, error) {
	var client models.Client
	err := s.db.WithContext(ctx).
		Where("LOWER(email) = ?", email).
		Order("id asc").
		First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *GormStore) LinkAccount(ctx context.Context, clientID, accountID uint, at time.Time) error {
	return s.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Updates(map[string]interface{}{
			"account_id": accountID,
			"status":     models.ClientActive,
			"linked_at":  at,
		}).Error
}

func (s *GormStore) CreateProfile(ctx context.Context, profile *models.ClientProfile) error {
	return s.db.WithContext(ctx).Create(profile).Error
}
