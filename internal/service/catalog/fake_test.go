package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/ashwinyue/problem-bank/internal/model"
	"github.com/ashwinyue/problem-bank/internal/repository"
)

// ========== 内存版 Catalog 实现，供单元测试使用 ==========

type fakeCatalog struct {
	tags     *fakeTagRepo
	sources  *fakeSourceRepo
	problems *fakeProblemRepo
}

func newFakeCatalog() *fakeCatalog {
	tags := &fakeTagRepo{byID: map[string]*model.Tag{}}
	sources := &fakeSourceRepo{byID: map[string]*model.Source{}}
	return &fakeCatalog{
		tags:    tags,
		sources: sources,
		problems: &fakeProblemRepo{
			byID:        map[string]*model.Problem{},
			tagLinks:    map[string][]string{},
			sourceLinks: map[string][]string{},
			tags:        tags,
			sources:     sources,
		},
	}
}

func (f *fakeCatalog) Tags() repository.TagRepository         { return f.tags }
func (f *fakeCatalog) Sources() repository.SourceRepository   { return f.sources }
func (f *fakeCatalog) Problems() repository.ProblemRepository { return f.problems }

// Transaction 测试实现直接在同一存储上执行回调，不做回滚
func (f *fakeCatalog) Transaction(ctx context.Context, fn func(tx repository.Catalog) error) error {
	return fn(f)
}

// ========== Tag 仓库 ==========

type fakeTagRepo struct {
	byID  map[string]*model.Tag
	order []string

	// forceConflict 使 Insert 永远报告名称冲突，GetByName 永远未命中，
	// 用于模拟创建竞争持续输掉的情形
	forceConflict bool

	// raceWinner 模拟并发赢家恰好在首查和插入之间建出同名行：
	// 首次 GetByName 未命中，Insert 报告冲突，复查 GetByName 返回赢家行
	raceWinner *model.Tag
	lookups    int
}

func (r *fakeTagRepo) GetByName(ctx context.Context, name string) (*model.Tag, error) {
	r.lookups++
	if r.forceConflict {
		return nil, nil
	}
	if r.raceWinner != nil && r.raceWinner.Name == name {
		if r.lookups == 1 {
			return nil, nil
		}
		cp := *r.raceWinner
		return &cp, nil
	}
	for _, id := range r.order {
		if r.byID[id].Name == name {
			cp := *r.byID[id]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTagRepo) GetByID(ctx context.Context, id string) (*model.Tag, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTagRepo) List(ctx context.Context) ([]*model.Tag, error) {
	out := make([]*model.Tag, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTagRepo) Insert(ctx context.Context, tag *model.Tag) (bool, error) {
	if r.forceConflict {
		return false, nil
	}
	if r.raceWinner != nil && r.raceWinner.Name == tag.Name {
		return false, nil
	}
	for _, id := range r.order {
		if r.byID[id].Name == tag.Name {
			return false, nil
		}
	}
	cp := *tag
	r.byID[tag.ID] = &cp
	r.order = append(r.order, tag.ID)
	return true, nil
}

func (r *fakeTagRepo) Update(ctx context.Context, tag *model.Tag) error {
	if _, ok := r.byID[tag.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, id := range r.order {
		if id != tag.ID && r.byID[id].Name == tag.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *tag
	r.byID[tag.ID] = &cp
	return nil
}

func (r *fakeTagRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// ========== Source 仓库 ==========

type fakeSourceRepo struct {
	byID  map[string]*model.Source
	order []string

	forceConflict bool

	raceWinner *model.Source
	lookups    int
}

func (r *fakeSourceRepo) GetByName(ctx context.Context, name string) (*model.Source, error) {
	r.lookups++
	if r.forceConflict {
		return nil, nil
	}
	if r.raceWinner != nil && r.raceWinner.Name == name {
		if r.lookups == 1 {
			return nil, nil
		}
		cp := *r.raceWinner
		return &cp, nil
	}
	for _, id := range r.order {
		if r.byID[id].Name == name {
			cp := *r.byID[id]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSourceRepo) GetByID(ctx context.Context, id string) (*model.Source, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSourceRepo) List(ctx context.Context) ([]*model.Source, error) {
	out := make([]*model.Source, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSourceRepo) Insert(ctx context.Context, source *model.Source) (bool, error) {
	if r.forceConflict {
		return false, nil
	}
	if r.raceWinner != nil && r.raceWinner.Name == source.Name {
		return false, nil
	}
	for _, id := range r.order {
		if r.byID[id].Name == source.Name {
			return false, nil
		}
	}
	cp := *source
	r.byID[source.ID] = &cp
	r.order = append(r.order, source.ID)
	return true, nil
}

func (r *fakeSourceRepo) Update(ctx context.Context, source *model.Source) error {
	if _, ok := r.byID[source.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, id := range r.order {
		if id != source.ID && r.byID[id].Name == source.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *source
	r.byID[source.ID] = &cp
	return nil
}

func (r *fakeSourceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// ========== Problem 仓库 ==========

type fakeProblemRepo struct {
	byID        map[string]*model.Problem
	order       []string
	tagLinks    map[string][]string
	sourceLinks map[string][]string

	tags    *fakeTagRepo
	sources *fakeSourceRepo
}

func (r *fakeProblemRepo) GetByID(ctx context.Context, id string) (*model.Problem, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProblemRepo) List(ctx context.Context) ([]*model.Problem, error) {
	out := make([]*model.Problem, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProblemRepo) Insert(ctx context.Context, problem *model.Problem) error {
	cp := *problem
	r.byID[problem.ID] = &cp
	r.order = append(r.order, problem.ID)
	return nil
}

func (r *fakeProblemRepo) Update(ctx context.Context, problem *model.Problem) error {
	if _, ok := r.byID[problem.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *problem
	r.byID[problem.ID] = &cp
	return nil
}

func (r *fakeProblemRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.byID, id)
	delete(r.tagLinks, id)
	delete(r.sourceLinks, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeProblemRepo) GetTags(ctx context.Context, problemID string) ([]*model.Tag, error) {
	out := make([]*model.Tag, 0, len(r.tagLinks[problemID]))
	for _, tagID := range r.tagLinks[problemID] {
		if t, ok := r.tags.byID[tagID]; ok {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProblemRepo) GetSources(ctx context.Context, problemID string) ([]*model.Source, error) {
	out := make([]*model.Source, 0, len(r.sourceLinks[problemID]))
	for _, sourceID := range r.sourceLinks[problemID] {
		if s, ok := r.sources.byID[sourceID]; ok {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProblemRepo) ReplaceTags(ctx context.Context, problemID string, tagIDs []string) error {
	r.tagLinks[problemID] = append([]string(nil), tagIDs...)
	return nil
}

func (r *fakeProblemRepo) ReplaceSources(ctx context.Context, problemID string, sourceIDs []string) error {
	r.sourceLinks[problemID] = append([]string(nil), sourceIDs...)
	return nil
}

// 确保测试实现满足接口
var _ repository.Catalog = (*fakeCatalog)(nil)
