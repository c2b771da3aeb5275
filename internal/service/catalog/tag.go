package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ashwinyue/problem-bank/internal/errs"
	"github.com/ashwinyue/problem-bank/internal/model"
	"github.com/ashwinyue/problem-bank/internal/repository"
)

// ListTags 获取全部标签
func (s *Service) ListTags(ctx context.Context) ([]*TagView, error) {
	tags, err := s.repo.Tags().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return newTagViews(tags), nil
}

// CreateTag 创建标签
// 名称去空白后为空报 InvalidArgument，已存在报 AlreadyExists
func (s *Service) CreateTag(ctx context.Context, name string) (*TagView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("tag name is required: %w", errs.ErrInvalidArgument)
	}

	var view *TagView
	err := s.repo.Transaction(ctx, func(tx repository.Catalog) error {
		existing, err := tx.Tags().GetByName(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to look up tag: %w", err)
		}
		if existing != nil {
			return fmt.Errorf("tag %q: %w", name, errs.ErrAlreadyExists)
		}

		tag := &model.Tag{ID: uuid.New().String(), Name: name}
		created, err := tx.Tags().Insert(ctx, tag)
		if err != nil {
			return fmt.Errorf("failed to create tag: %w", err)
		}
		if !created {
			// 并发请求抢先创建了同名标签：对直接创建来说就是重名
			return fmt.Errorf("tag %q: %w", name, errs.ErrAlreadyExists)
		}

		view = newTagView(tag)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// RenameTag 重命名标签
// id 不存在报 NotFound，新名称被其他标签占用报 AlreadyExists
func (s *Service) RenameTag(ctx context.Context, id, newName string) (*TagView, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, fmt.Errorf("tag name is required: %w", errs.ErrInvalidArgument)
	}

	var view *TagView
	err := s.repo.Transaction(ctx, func(tx repository.Catalog) error {
		tag, err := tx.Tags().GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("tag %q: %w", id, errs.ErrNotFound)
			}
			return fmt.Errorf("failed to get tag: %w", err)
		}

		existing, err := tx.Tags().GetByName(ctx, newName)
		if err != nil {
			return fmt.Errorf("failed to look up tag: %w", err)
		}
		if existing != nil && existing.ID != id {
			return fmt.Errorf("tag %q: %w", newName, errs.ErrAlreadyExists)
		}

		tag.Name = newName
		if err := tx.Tags().Update(ctx, tag); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("tag %q: %w", newName, errs.ErrAlreadyExists)
			}
			return fmt.Errorf("failed to update tag: %w", err)
		}

		view = newTagView(tag)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// DeleteTag 删除标签及其关联，引用它的题目不受影响
func (s *Service) DeleteTag(ctx context.Context, id string) error {
	return s.repo.Transaction(ctx, func(tx repository.Catalog) error {
		if err := tx.Tags().Delete(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("tag %q: %w", id, errs.ErrNotFound)
			}
			return fmt.Errorf("failed to delete tag: %w", err)
		}
		return nil
	})
}
