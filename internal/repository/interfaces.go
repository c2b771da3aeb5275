// Package repository 定义数据访问接口
// 接口抽象使依赖注入和单元测试成为可能
package repository

import (
	"context"

	"github.com/ashwinyue/problem-bank/internal/model"
)

// ========== TagRepository 接口 ==========

// TagRepository 标签数据访问接口
// 接口定义使 Service 层可以轻松 mock 进行单元测试
type TagRepository interface {
	// GetByName 精确匹配查询，未找到时返回 (nil, nil)
	GetByName(ctx context.Context, name string) (*model.Tag, error)
	GetByID(ctx context.Context, id string) (*model.Tag, error)
	List(ctx context.Context) ([]*model.Tag, error)
	// Insert 写入标签；名称与已有行冲突时不报错，返回 created=false
	Insert(ctx context.Context, tag *model.Tag) (created bool, err error)
	Update(ctx context.Context, tag *model.Tag) error
	// Delete 删除标签及其全部关联行，不级联删除题目
	Delete(ctx context.Context, id string) error
}

// ========== SourceRepository 接口 ==========

// SourceRepository 来源数据访问接口
type SourceRepository interface {
	GetByName(ctx context.Context, name string) (*model.Source, error)
	GetByID(ctx context.Context, id string) (*model.Source, error)
	List(ctx context.Context) ([]*model.Source, error)
	Insert(ctx context.Context, source *model.Source) (created bool, err error)
	Update(ctx context.Context, source *model.Source) error
	Delete(ctx context.Context, id string) error
}

// ========== ProblemRepository 接口 ==========

// ProblemRepository 题目数据访问接口
type ProblemRepository interface {
	GetByID(ctx context.Context, id string) (*model.Problem, error)
	List(ctx context.Context) ([]*model.Problem, error)
	Insert(ctx context.Context, problem *model.Problem) error
	Update(ctx context.Context, problem *model.Problem) error
	// Delete 删除题目及其全部关联行，Tag/Source 实体保持不动
	Delete(ctx context.Context, id string) error

	// 关联读取，按关联行创建时间排序
	GetTags(ctx context.Context, problemID string) ([]*model.Tag, error)
	GetSources(ctx context.Context, problemID string) ([]*model.Source, error)
	// ReplaceTags 覆盖题目的整个标签关联集合（先删后插，非合并）
	ReplaceTags(ctx context.Context, problemID string, tagIDs []string) error
	ReplaceSources(ctx context.Context, problemID string, sourceIDs []string) error
}

// ========== Catalog 聚合接口 ==========

// Catalog 目录存储聚合
// Transaction 把一组仓库绑定到同一个事务句柄后交给回调，
// 取代原始实现里的全局可变会话：begin → operations → commit-or-rollback，
// 生命周期严格限定在单次请求内
type Catalog interface {
	Tags() TagRepository
	Sources() SourceRepository
	Problems() ProblemRepository
	Transaction(ctx context.Context, fn func(tx Catalog) error) error
}

// 确保实现满足接口
var (
	_ TagRepository     = (*tagRepositoryImpl)(nil)
	_ SourceRepository  = (*sourceRepositoryImpl)(nil)
	_ ProblemRepository = (*problemRepositoryImpl)(nil)
	_ Catalog           = (*Repositories)(nil)
)
