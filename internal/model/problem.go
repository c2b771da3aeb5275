package model

import "time"

// ProblemStatus 题目默认状态
const ProblemStatusUnsolved = "Unsolved"

// Problem 题目
// Keywords 以逗号拼接的形式落库，对外始终以字符串列表呈现，
// 转换在 service 层完成
type Problem struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title         string    `gorm:"type:varchar(256);not null" json:"title"`
	Difficulty    string    `gorm:"type:varchar(16);not null" json:"difficulty"`
	EstimatedTime string    `gorm:"type:varchar(64)" json:"estimated_time"`
	Keywords      string    `gorm:"type:varchar(256)" json:"-"`
	Author        string    `gorm:"type:varchar(128)" json:"author"`
	SolutionText  string    `gorm:"type:text" json:"solution_text"`
	Status        string    `gorm:"type:varchar(32);default:'Unsolved'" json:"status"`
	LatexContent  string    `gorm:"type:text" json:"latex_content"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Problem) TableName() string {
	return "problems"
}
