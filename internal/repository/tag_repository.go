package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ashwinyue/problem-bank/internal/model"
)

// tagRepositoryImpl 标签仓库
type tagRepositoryImpl struct {
	db *gorm.DB
}

// NewTagRepository 创建标签仓库
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepositoryImpl{db: db}
}

// GetByName 根据名称精确查询标签，未找到时返回 (nil, nil)
func (r *tagRepositoryImpl) GetByName(ctx context.Context, name string) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByID 根据 ID 获取标签
func (r *tagRepositoryImpl) GetByID(ctx context.Context, id string) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// List 获取全部标签
func (r *tagRepositoryImpl) List(ctx context.Context) ([]*model.Tag, error) {
	var tags []*model.Tag
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&tags).Error
	return tags, err
}

// Insert 写入标签
// 名称唯一索引冲突时走 ON CONFLICT DO NOTHING，返回 created=false
// 而不是报错，避免并发竞争把整个外层事务打翻
func (r *tagRepositoryImpl) Insert(ctx context.Context, tag *model.Tag) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(tag)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Update 更新标签
func (r *tagRepositoryImpl) Update(ctx context.Context, tag *model.Tag) error {
	return r.db.WithContext(ctx).Save(tag).Error
}

// Delete 删除标签及其关联行
// 只摘除 problem_tags 里的关联，绝不触碰题目本身
func (r *tagRepositoryImpl) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Where("tag_id = ?", id).
		Delete(&model.ProblemTag{}).Error; err != nil {
		return fmt.Errorf("failed to remove tag associations: %w", err)
	}
	res := r.db.WithContext(ctx).Delete(&model.Tag{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
