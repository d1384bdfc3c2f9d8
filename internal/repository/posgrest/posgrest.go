package posgrest

import (
	"context"

	"gorm.io/gorm"
)

type repository[T interface{}] struct {
	db *gorm.DB
}

func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// GetBy takes a full condition such as "owner_id = ?". Results are newest first.
func (r *repository[T]) GetBy(ctx context.Context, key string, value interface{}, limit int) (*[]T, error) {
	var entities []T
	query := r.db.WithContext(ctx).Where(key, value).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}
	return &entities, nil
}

func (r *repository[T]) Update(ctx context.Context, entity *T, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Updates(entity).Error
}
