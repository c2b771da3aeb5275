package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories 仓库集合，用于统一管理所有仓库
type Repositories struct {
	DB      *gorm.DB // 直接访问数据库
	Tag     TagRepository
	Source  SourceRepository
	Problem ProblemRepository
}

// NewRepositories 创建所有仓库
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:      db,
		Tag:     NewTagRepository(db),
		Source:  NewSourceRepository(db),
		Problem: NewProblemRepository(db),
	}
}

// Tags 返回标签仓库
func (r *Repositories) Tags() TagRepository { return r.Tag }

// Sources 返回来源仓库
func (r *Repositories) Sources() SourceRepository { return r.Source }

// Problems 返回题目仓库
func (r *Repositories) Problems() ProblemRepository { return r.Problem }

// Transaction 在单个数据库事务中执行 fn
// fn 收到的仓库集合绑定到该事务，fn 返回错误时整体回滚
func (r *Repositories) Transaction(ctx context.Context, fn func(tx Catalog) error) error {
	return r.DB.WithContext(ctx).Transaction(func(txdb *gorm.DB) error {
		return fn(NewRepositories(txdb))
	})
}
