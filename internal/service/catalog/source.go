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

// ListSources 获取全部来源
func (s *Service) ListSources(ctx context.Context) ([]*SourceView, error) {
	sources, err := s.repo.Sources().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	return newSourceViews(sources), nil
}

// CreateSource 创建来源，规则与 CreateTag 对称
func (s *Service) CreateSource(ctx context.Context, name string) (*SourceView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("source name is required: %w", errs.ErrInvalidArgument)
	}

	var view *SourceView
	err := s.repo.Transaction(ctx, func(tx repository.Catalog) error {
		existing, err := tx.Sources().GetByName(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to look up source: %w", err)
		}
		if existing != nil {
			return fmt.Errorf("source %q: %w", name, errs.ErrAlreadyExists)
		}

		source := &model.Source{ID: uuid.New().String(), Name: name}
		created, err := tx.Sources().Insert(ctx, source)
		if err != nil {
			return fmt.Errorf("failed to create source: %w", err)
		}
		if !created {
			return fmt.Errorf("source %q: %w", name, errs.ErrAlreadyExists)
		}

		view = newSourceView(source)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// RenameSource 重命名来源
func (s *Service) RenameSource(ctx context.Context, id, newName string) (*SourceView, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, fmt.Errorf("source name is required: %w", errs.ErrInvalidArgument)
	}

	var view *SourceView
	err := s.repo.Transaction(ctx, func(tx repository.Catalog) error {
		source, err := tx.Sources().GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("source %q: %w", id, errs.ErrNotFound)
			}
			return fmt.Errorf("failed to get source: %w", err)
		}

		existing, err := tx.Sources().GetByName(ctx, newName)
		if err != nil {
			return fmt.Errorf("failed to look up source: %w", err)
		}
		if existing != nil && existing.ID != id {
			return fmt.Errorf("source %q: %w", newName, errs.ErrAlreadyExists)
		}

		source.Name = newName
		if err := tx.Sources().Update(ctx, source); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("source %q: %w", newName, errs.ErrAlreadyExists)
			}
			return fmt.Errorf("failed to update source: %w", err)
		}

		view = newSourceView(source)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// DeleteSource 删除来源及其关联
func (s *Service) DeleteSource(ctx context.Context, id string) error {
	return s.repo.Transaction(ctx, func(tx repository.Catalog) error {
		if err := tx.Sources().Delete(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("source %q: %w", id, errs.ErrNotFound)
			}
			return fmt.Errorf("failed to delete source: %w", err)
		}
		return nil
	})
}
