package model

import "time"

// Source 题目来源（出处）
// 与 Tag 同构：名称全局唯一，独立于题目存在
type Source struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_sources_name" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (Source) TableName() string {
	return "sources"
}

// ProblemSource 题目-来源关联表
type ProblemSource struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ProblemID string    `gorm:"type:varchar(36);not null;index:idx_problem_source;index:idx_problem_source_unique,unique" json:"problem_id"`
	SourceID  string    `gorm:"type:varchar(36);not null;index:idx_problem_source_unique,unique" json:"source_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (ProblemSource) TableName() string {
	return "problem_sources"
}
