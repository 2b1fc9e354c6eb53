package repository

import (
	"context"

	"gorm.io/gorm"

	"wellbook/internal/domain"
)

type BusinessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

// GetMembersByRoles returns business members holding any of the given roles,
// with their user profiles loaded.
func (r *BusinessRepository) GetMembersByRoles(ctx context.Context, businessID int64, roles ...domain.Role) ([]domain.BusinessMember, error) {
	var out []domain.BusinessMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("business_id = ? AND role IN ?", businessID, roles).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
