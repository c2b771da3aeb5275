package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ashwinyue/problem-bank/internal/errs"
	"github.com/ashwinyue/problem-bank/internal/model"
	"github.com/ashwinyue/problem-bank/internal/repository"
)

// 名称调和引擎：把一组人工输入的名称解析为实体引用，
// 缺失的实体就地创建，同一逻辑名称在单次调用内和并发调用间都不会产生重复行。
// 引擎自身无状态，必须拿到调用方的事务句柄执行，绝不独立提交——
// 否则题目写入失败时会留下孤儿 Tag/Source。

// normalizeNames 清洗名称列表：去首尾空白、丢弃空串、按首次出现顺序去重
func normalizeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}

// reconcileTags 在 tx 事务内把标签名称列表解析为标签实体列表
func reconcileTags(ctx context.Context, tx repository.Catalog, names []string) ([]*model.Tag, error) {
	resolved := make([]*model.Tag, 0, len(names))
	for _, name := range normalizeNames(names) {
		tag, err := tx.Tags().GetByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to look up tag %q: %w", name, err)
		}
		if tag == nil {
			tag, err = insertTag(ctx, tx, name)
			if err != nil {
				return nil, err
			}
		}
		resolved = append(resolved, tag)
	}
	return resolved, nil
}

// insertTag 插入新标签
// 唯一索引冲突说明并发请求抢先建出了同名行，此时回退为查询复用；
// 复查仍未命中（赢家又被删掉）就补插一次，再失败以 Conflict 上抛
func insertTag(ctx context.Context, tx repository.Catalog, name string) (*model.Tag, error) {
	tag := &model.Tag{ID: uuid.New().String(), Name: name}
	created, err := tx.Tags().Insert(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag %q: %w", name, err)
	}
	if created {
		return tag, nil
	}

	existing, err := tx.Tags().GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up tag %q: %w", name, err)
	}
	if existing != nil {
		return existing, nil
	}

	tag.ID = uuid.New().String()
	created, err = tx.Tags().Insert(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag %q: %w", name, err)
	}
	if created {
		return tag, nil
	}
	return nil, fmt.Errorf("tag %q lost creation race: %w", name, errs.ErrConflict)
}

// reconcileSources 在 tx 事务内把来源名称列表解析为来源实体列表
func reconcileSources(ctx context.Context, tx repository.Catalog, names []string) ([]*model.Source, error) {
	resolved := make([]*model.Source, 0, len(names))
	for _, name := range normalizeNames(names) {
		source, err := tx.Sources().GetByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to look up source %q: %w", name, err)
		}
		if source == nil {
			source, err = insertSource(ctx, tx, name)
			if err != nil {
				return nil, err
			}
		}
		resolved = append(resolved, source)
	}
	return resolved, nil
}

// insertSource 插入新来源，冲突处理与 insertTag 一致
func insertSource(ctx context.Context, tx repository.Catalog, name string) (*model.Source, error) {
	source := &model.Source{ID: uuid.New().String(), Name: name}
	created, err := tx.Sources().Insert(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to create source %q: %w", name, err)
	}
	if created {
		return source, nil
	}

	existing, err := tx.Sources().GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up source %q: %w", name, err)
	}
	if existing != nil {
		return existing, nil
	}

	source.ID = uuid.New().String()
	created, err = tx.Sources().Insert(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to create source %q: %w", name, err)
	}
	if created {
		return source, nil
	}
	return nil, fmt.Errorf("source %q lost creation race: %w", name, errs.ErrConflict)
}

func tagIDs(tags []*model.Tag) []string {
	ids := make([]string, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	return ids
}

func sourceIDs(sources []*model.Source) []string {
	ids := make([]string, 0, len(sources))
	for _, s := range sources {
		ids = append(ids, s.ID)
	}
	return ids
}
