package model

import "time"

// Tag 题目标签
// 名称全局唯一（大小写敏感），可被任意多个题目共享引用
type Tag struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_tags_name" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}

// ProblemTag 题目-标签关联表
// 关联行只持有两个外键，除此之外没有独立语义
type ProblemTag struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ProblemID string    `gorm:"type:varchar(36);not null;index:idx_problem_tag;index:idx_problem_tag_unique,unique" json:"problem_id"`
	TagID     string    `gorm:"type:varchar(36);not null;index:idx_problem_tag_unique,unique" json:"tag_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (ProblemTag) TableName() string {
	return "problem_tags"
}
