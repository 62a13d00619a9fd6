package repository

import (
	"context"
	"errors"

	"farmmarket/internal/domain/model"
	repo "farmmarket/internal/repository"

	"gorm.io/gorm"
)

type CourierGormRepository struct {
	db *gorm.DB
}

func NewCourierGormRepository(db *gorm.DB) *CourierGormRepository {
	return &CourierGormRepository{db: db}
}

func (r *CourierGormRepository) Create(ctx context.Context, c model.Courier) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, repo.ErrDuplicate
		}
		return 0, err
	}
	return c.ID, nil
}

func (r *CourierGormRepository) FindByID(ctx context.Context, courierID int64) (model.Courier, error) {
	var c model.Courier
	err := r.db.WithContext(ctx).Where("id = ?", courierID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Courier{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Courier{}, err
	}
	return c, nil
}

func (r *CourierGormRepository) FindByUserID(ctx context.Context, userID int64) (model.Courier, error) {
	var c model.Courier
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Courier{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Courier{}, err
	}
	return c, nil
}
