package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ashwinyue/problem-bank/internal/model"
)

// problemRepositoryImpl 题目仓库
type problemRepositoryImpl struct {
	db *gorm.DB
}

// NewProblemRepository 创建题目仓库
func NewProblemRepository(db *gorm.DB) ProblemRepository {
	return &problemRepositoryImpl{db: db}
}

// GetByID 根据 ID 获取题目
func (r *problemRepositoryImpl) GetByID(ctx context.Context, id string) (*model.Problem, error) {
	var problem model.Problem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&problem).Error
	if err != nil {
		return nil, err
	}
	return &problem, nil
}

// List 获取全部题目
func (r *problemRepositoryImpl) List(ctx context.Context) ([]*model.Problem, error) {
	var problems []*model.Problem
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&problems).Error
	return problems, err
}

// Insert 写入题目
func (r *problemRepositoryImpl) Insert(ctx context.Context, problem *model.Problem) error {
	return r.db.WithContext(ctx).Create(problem).Error
}

// Update 更新题目
func (r *problemRepositoryImpl) Update(ctx context.Context, problem *model.Problem) error {
	return r.db.WithContext(ctx).Save(problem).Error
}

// Delete 删除题目及其关联行
// Tag/Source 实体是共享的，保持原样
func (r *problemRepositoryImpl) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Where("problem_id = ?", id).
		Delete(&model.ProblemTag{}).Error; err != nil {
		return fmt.Errorf("failed to remove tag associations: %w", err)
	}
	if err := r.db.WithContext(ctx).
		Where("problem_id = ?", id).
		Delete(&model.ProblemSource{}).Error; err != nil {
		return fmt.Errorf("failed to remove source associations: %w", err)
	}
	res := r.db.WithContext(ctx).Delete(&model.Problem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetTags 获取题目的所有标签，按关联建立顺序排列
func (r *problemRepositoryImpl) GetTags(ctx context.Context, problemID string) ([]*model.Tag, error) {
	var tags []*model.Tag
	err := r.db.WithContext(ctx).
		Model(&model.Tag{}).
		Joins("JOIN problem_tags ON problem_tags.tag_id = tags.id").
		Where("problem_tags.problem_id = ?", problemID).
		Order("problem_tags.created_at ASC").
		Find(&tags).Error
	return tags, err
}

// GetSources 获取题目的所有来源，按关联建立顺序排列
func (r *problemRepositoryImpl) GetSources(ctx context.Context, problemID string) ([]*model.Source, error) {
	var sources []*model.Source
	err := r.db.WithContext(ctx).
		Model(&model.Source{}).
		Joins("JOIN problem_sources ON problem_sources.source_id = sources.id").
		Where("problem_sources.problem_id = ?", problemID).
		Order("problem_sources.created_at ASC").
		Find(&sources).Error
	return sources, err
}

// ReplaceTags 覆盖题目的标签关联集合（先删除后添加）
// 调用方负责把本方法放进事务里执行
func (r *problemRepositoryImpl) ReplaceTags(ctx context.Context, problemID string, tagIDs []string) error {
	if err := r.db.WithContext(ctx).
		Where("problem_id = ?", problemID).
		Delete(&model.ProblemTag{}).Error; err != nil {
		return fmt.Errorf("failed to remove existing tags: %w", err)
	}

	for _, tagID := range tagIDs {
		link := &model.ProblemTag{
			ID:        uuid.New().String(),
			ProblemID: problemID,
			TagID:     tagID,
		}
		if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
			return fmt.Errorf("failed to add tag %s: %w", tagID, err)
		}
	}

	return nil
}

// ReplaceSources 覆盖题目的来源关联集合
func (r *problemRepositoryImpl) ReplaceSources(ctx context.Context, problemID string, sourceIDs []string) error {
	if err := r.db.WithContext(ctx).
		Where("problem_id = ?", problemID).
		Delete(&model.ProblemSource{}).Error; err != nil {
		return fmt.Errorf("failed to remove existing sources: %w", err)
	}

	for _, sourceID := range sourceIDs {
		link := &model.ProblemSource{
			ID:        uuid.New().String(),
			ProblemID: problemID,
			SourceID:  sourceID,
		}
		if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
			return fmt.Errorf("failed to add source %s: %w", sourceID, err)
		}
	}

	return nil
}
