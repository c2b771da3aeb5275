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

// CreateProblemRequest 创建题目请求
// Tags/Sources 是名称列表，由调和引擎解析为实体引用
type CreateProblemRequest struct {
	Title         string   `json:"title"`
	Difficulty    string   `json:"difficulty"`
	EstimatedTime string   `json:"estimated_time"`
	Keywords      []string `json:"keywords"`
	Author        string   `json:"author"`
	SolutionText  string   `json:"solution_text"`
	Status        string   `json:"status"`
	LatexContent  string   `json:"latex_content"`
	Tags          []string `json:"tags"`
	Sources       []string `json:"sources"`
}

// UpdateProblemRequest 更新题目请求
// 指针字段缺省表示保留原值；Tags/Sources 一旦出现则整体覆盖关联集合
type UpdateProblemRequest struct {
	Title         *string   `json:"title"`
	Difficulty    *string   `json:"difficulty"`
	EstimatedTime *string   `json:"estimated_time"`
	Keywords      *[]string `json:"keywords"`
	Author        *string   `json:"author"`
	SolutionText  *string   `json:"solution_text"`
	Status        *string   `json:"status"`
	LatexContent  *string   `json:"latex_content"`
	Tags          *[]string `json:"tags"`
	Sources       *[]string `json:"sources"`
}

// ListProblems 获取全部题目（完整展开实体图）
func (s *Service) ListProblems(ctx context.Context) ([]*ProblemView, error) {
	problems, err := s.repo.Problems().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}

	views := make([]*ProblemView, 0, len(problems))
	for _, p := range problems {
		tags, err := s.repo.Problems().GetTags(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get tags for problem %s: %w", p.ID, err)
		}
		sources, err := s.repo.Problems().GetSources(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get sources for problem %s: %w", p.ID, err)
		}
		views = append(views, newProblemView(p, tags, sources))
	}
	return views, nil
}

// GetProblem 获取单个题目
func (s *Service) GetProblem(ctx context.Context, id string) (*ProblemView, error) {
	problem, err := s.repo.Problems().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("problem %q: %w", id, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}

	tags, err := s.repo.Problems().GetTags(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	sources, err := s.repo.Problems().GetSources(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get sources: %w", err)
	}
	return newProblemView(problem, tags, sources), nil
}

// CreateProblem 创建题目
// 校验在任何存储访问之前完成；标签/来源调和与题目落库同处一个事务，
// 校验失败时不会留下任何 Tag/Source 行
func (s *Service) CreateProblem(ctx context.Context, req *CreateProblemRequest) (*ProblemView, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required: %w", errs.ErrInvalidArgument)
	}
	difficulty := strings.TrimSpace(req.Difficulty)
	if difficulty == "" {
		return nil, fmt.Errorf("difficulty is required: %w", errs.ErrInvalidArgument)
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = model.ProblemStatusUnsolved
	}

	problem := &model.Problem{
		ID:            uuid.New().String(),
		Title:         title,
		Difficulty:    difficulty,
		EstimatedTime: strings.TrimSpace(req.EstimatedTime),
		Keywords:      joinKeywords(req.Keywords),
		Author:        strings.TrimSpace(req.Author),
		SolutionText:  strings.TrimSpace(req.SolutionText),
		Status:        status,
		LatexContent:  strings.TrimSpace(req.LatexContent),
	}

	var view *ProblemView
	err := s.repo.Transaction(ctx, func(tx repository.Catalog) error {
		tags, err := reconcileTags(ctx, tx, req.Tags)
		if err != nil {
			return err
		}
		sources, err := reconcileSources(ctx, tx, req.Sources)
		if err != nil {
			return err
		}

		if err := tx.Problems().Insert(ctx, problem); err != nil {
			return fmt.Errorf("failed to create problem: %w", err)
		}
		if err := tx.Problems().ReplaceTags(ctx, problem.ID, tagIDs(tags)); err != nil {
			return err
		}
		if err := tx.Problems().ReplaceSources(ctx, problem.ID, sourceIDs(sources)); err != nil {
			return err
		}

		view = newProblemView(problem, tags, sources)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// UpdateProblem 更新题目
// 请求中出现的字段覆盖存量值，缺省字段保持不变；
// Tags/Sources 例外：出现即重跑调和引擎并整体覆盖关联集合，而非并集
func (s *Service) UpdateProblem(ctx context.Context, id string, req *UpdateProblemRequest) (*ProblemView, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, fmt.Errorf("title is required: %w", errs.ErrInvalidArgument)
	}
	if req.Difficulty != nil && strings.TrimSpace(*req.Difficulty) == "" {
		return nil, fmt.Errorf("difficulty is required: %w", errs.ErrInvalidArgument)
	}

	var view *ProblemView
	err := s.repo.Transaction(ctx, func(tx repository.Catalog) error {
		problem, err := tx.Problems().GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("problem %q: %w", id, errs.ErrNotFound)
			}
			return fmt.Errorf("failed to get problem: %w", err)
		}

		if req.Title != nil {
			problem.Title = strings.TrimSpace(*req.Title)
		}
		if req.Difficulty != nil {
			problem.Difficulty = strings.TrimSpace(*req.Difficulty)
		}
		if req.EstimatedTime != nil {
			problem.EstimatedTime = strings.TrimSpace(*req.EstimatedTime)
		}
		if req.Keywords != nil {
			problem.Keywords = joinKeywords(*req.Keywords)
		}
		if req.Author != nil {
			problem.Author = strings.TrimSpace(*req.Author)
		}
		if req.SolutionText != nil {
			problem.SolutionText = strings.TrimSpace(*req.SolutionText)
		}
		if req.Status != nil {
			problem.Status = strings.TrimSpace(*req.Status)
		}
		if req.LatexContent != nil {
			problem.LatexContent = strings.TrimSpace(*req.LatexContent)
		}

		if err := tx.Problems().Update(ctx, problem); err != nil {
			return fmt.Errorf("failed to update problem: %w", err)
		}

		var tags []*model.Tag
		if req.Tags != nil {
			tags, err = reconcileTags(ctx, tx, *req.Tags)
			if err != nil {
				return err
			}
			if err := tx.Problems().ReplaceTags(ctx, id, tagIDs(tags)); err != nil {
				return err
			}
		} else {
			tags, err = tx.Problems().GetTags(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get tags: %w", err)
			}
		}

		var sources []*model.Source
		if req.Sources != nil {
			sources, err = reconcileSources(ctx, tx, *req.Sources)
			if err != nil {
				return err
			}
			if err := tx.Problems().ReplaceSources(ctx, id, sourceIDs(sources)); err != nil {
				return err
			}
		} else {
			sources, err = tx.Problems().GetSources(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get sources: %w", err)
			}
		}

		view = newProblemView(problem, tags, sources)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// DeleteProblem 删除题目及其关联，Tag/Source 实体保持可查
func (s *Service) DeleteProblem(ctx context.Context, id string) error {
	return s.repo.Transaction(ctx, func(tx repository.Catalog) error {
		if err := tx.Problems().Delete(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("problem %q: %w", id, errs.ErrNotFound)
			}
			return fmt.Errorf("failed to delete problem: %w", err)
		}
		return nil
	})
}
