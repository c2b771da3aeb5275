// Package catalog 题目目录服务
// 负责 Problem/Tag/Source 的读写入口、字段归一化与唯一性规则，
// 写操作在单个事务内组合名称调和与持久化
package catalog

import (
	"strings"

	"github.com/ashwinyue/problem-bank/internal/model"
	"github.com/ashwinyue/problem-bank/internal/repository"
)

// Service 目录服务
type Service struct {
	repo repository.Catalog
}

// NewService 创建目录服务
func NewService(repo repository.Catalog) *Service {
	return &Service{repo: repo}
}

// TagView 标签响应
type TagView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SourceView 来源响应
type SourceView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProblemView 题目响应，携带完整展开的实体图
type ProblemView struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Difficulty    string        `json:"difficulty"`
	EstimatedTime string        `json:"estimated_time"`
	Keywords      []string      `json:"keywords"`
	Author        string        `json:"author"`
	SolutionText  string        `json:"solution_text"`
	Status        string        `json:"status"`
	LatexContent  string        `json:"latex_content"`
	Tags          []*TagView    `json:"tags"`
	Sources       []*SourceView `json:"sources"`
}

func newTagView(t *model.Tag) *TagView {
	return &TagView{ID: t.ID, Name: t.Name}
}

func newSourceView(s *model.Source) *SourceView {
	return &SourceView{ID: s.ID, Name: s.Name}
}

func newTagViews(tags []*model.Tag) []*TagView {
	views := make([]*TagView, 0, len(tags))
	for _, t := range tags {
		views = append(views, newTagView(t))
	}
	return views
}

func newSourceViews(sources []*model.Source) []*SourceView {
	views := make([]*SourceView, 0, len(sources))
	for _, s := range sources {
		views = append(views, newSourceView(s))
	}
	return views
}

func newProblemView(p *model.Problem, tags []*model.Tag, sources []*model.Source) *ProblemView {
	return &ProblemView{
		ID:            p.ID,
		Title:         p.Title,
		Difficulty:    p.Difficulty,
		EstimatedTime: p.EstimatedTime,
		Keywords:      splitKeywords(p.Keywords),
		Author:        p.Author,
		SolutionText:  p.SolutionText,
		Status:        p.Status,
		LatexContent:  p.LatexContent,
		Tags:          newTagViews(tags),
		Sources:       newSourceViews(sources),
	}
}

// normalizeKeywords 清洗关键词列表：去首尾空白、丢弃空串，保持顺序
func normalizeKeywords(keywords []string) []string {
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		cleaned = append(cleaned, kw)
	}
	return cleaned
}

// joinKeywords 关键词的存储编码：逗号拼接
// 仅 Entity Store 内部使用，对外契约始终是字符串列表
func joinKeywords(keywords []string) string {
	return strings.Join(normalizeKeywords(keywords), ", ")
}

// splitKeywords 关键词的存储解码
func splitKeywords(stored string) []string {
	if stored == "" {
		return []string{}
	}
	parts := strings.Split(stored, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		keywords = append(keywords, p)
	}
	return keywords
}
