package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ashwinyue/problem-bank/internal/model"
)

// sourceRepositoryImpl 来源仓库
type sourceRepositoryImpl struct {
	db *gorm.DB
}

// NewSourceRepository 创建来源仓库
func NewSourceRepository(db *gorm.DB) SourceRepository {
	return &sourceRepositoryImpl{db: db}
}

// GetByName 根据名称精确查询来源，未找到时返回 (nil, nil)
func (r *sourceRepositoryImpl) GetByName(ctx context.Context, name string) (*model.Source, error) {
	var source model.Source
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&source).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &source, nil
}

// GetByID 根据 ID 获取来源
func (r *sourceRepositoryImpl) GetByID(ctx context.Context, id string) (*model.Source, error) {
	var source model.Source
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&source).Error
	if err != nil {
		return nil, err
	}
	return &source, nil
}

// List 获取全部来源
func (r *sourceRepositoryImpl) List(ctx context.Context) ([]*model.Source, error) {
	var sources []*model.Source
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&sources).Error
	return sources, err
}

// Insert 写入来源，名称冲突时返回 created=false
func (r *sourceRepositoryImpl) Insert(ctx context.Context, source *model.Source) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(source)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Update 更新来源
func (r *sourceRepositoryImpl) Update(ctx context.Context, source *model.Source) error {
	return r.db.WithContext(ctx).Save(source).Error
}

// Delete 删除来源及其关联行
func (r *sourceRepositoryImpl) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Where("source_id = ?", id).
		Delete(&model.ProblemSource{}).Error; err != nil {
		return fmt.Errorf("failed to remove source associations: %w", err)
	}
	res := r.db.WithContext(ctx).Delete(&model.Source{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
