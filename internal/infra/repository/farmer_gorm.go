package repository

import (
	"context"
	"errors"

	"farmmarket/internal/domain/model"
	repo "farmmarket/internal/repository"

	"gorm.io/gorm"
)

type FarmerGormRepository struct {
	db *gorm.DB
}

func NewFarmerGormRepository(db *gorm.DB) *FarmerGormRepository {
	return &FarmerGormRepository{db: db}
}

func (r *FarmerGormRepository) Create(ctx context.Context, f model.Farmer) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&f).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, repo.ErrDuplicate
		}
		return 0, err
	}
	return f.ID, nil
}

func (r *FarmerGormRepository) FindByID(ctx context.Context, farmerID int64) (model.Farmer, error) {
	var f model.Farmer
	err := r.db.WithContext(ctx).Where("id = ?", farmerID).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Farmer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Farmer{}, err
	}
	return f, nil
}

func (r *FarmerGormRepository) FindByUserID(ctx context.Context, userID int64) (model.Farmer, error) {
	var f model.Farmer
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Farmer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Farmer{}, err
	}
	return f, nil
}

func (r *FarmerGormRepository) ListByIDs(ctx context.Context, farmerIDs []int64) ([]model.Farmer, error) {
	if len(farmerIDs) == 0 {
		return []model.Farmer{}, nil
	}
	var items []model.Farmer
	err := r.db.WithContext(ctx).Where("id IN ?", farmerIDs).Find(&items).Error
	if err != nil {
		return []model.Farmer{}, err
	}
	return items, nil
}
