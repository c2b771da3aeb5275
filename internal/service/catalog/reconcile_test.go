// Package catalog 名称调和引擎单元测试
package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ashwinyue/problem-bank/internal/errs"
	"github.com/ashwinyue/problem-bank/internal/model"
)

// ========== normalizeNames 测试 ==========

func TestNormalizeNames(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "trims and drops empties",
			input: []string{" Algebra ", "", "  ", "Geometry"},
			want:  []string{"Algebra", "Geometry"},
		},
		{
			name:  "dedupes keeping first occurrence",
			input: []string{"Algebra", "Geometry", "Algebra", " Algebra "},
			want:  []string{"Algebra", "Geometry"},
		},
		{
			name:  "case sensitive",
			input: []string{"algebra", "Algebra"},
			want:  []string{"algebra", "Algebra"},
		},
		{
			name:  "nil input",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeNames(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeNames() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ========== reconcileTags 测试 ==========

func TestReconcileTags_CreatesMissing(t *testing.T) {
	ctx := context.Background()
	store := newFakeCatalog()

	tags, err := reconcileTags(ctx, store, []string{"Algebra", "Geometry"})
	if err != nil {
		t.Fatalf("reconcileTags() error: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("reconcileTags() returned %d tags, want 2", len(tags))
	}
	if len(store.tags.order) != 2 {
		t.Errorf("store has %d tags, want 2", len(store.tags.order))
	}
}

// 重复调和同一批名称必须复用已有行，不产生新行
func TestReconcileTags_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newFakeCatalog()

	first, err := reconcileTags(ctx, store, []string{"Algebra", "Geometry"})
	if err != nil {
		t.Fatalf("first reconcileTags() error: %v", err)
	}
	second, err := reconcileTags(ctx, store, []string{"Geometry", "Algebra"})
	if err != nil {
		t.Fatalf("second reconcileTags() error: %v", err)
	}

	if len(store.tags.order) != 2 {
		t.Fatalf("store has %d tags after two rounds, want 2", len(store.tags.order))
	}

	ids := map[string]string{}
	for _, tag := range first {
		ids[tag.Name] = tag.ID
	}
	for _, tag := range second {
		if ids[tag.Name] != tag.ID {
			t.Errorf("tag %q resolved to new ID %q, want reuse of %q", tag.Name, tag.ID, ids[tag.Name])
		}
	}
}

func TestReconcileTags_DedupesInput(t *testing.T) {
	ctx := context.Background()
	store := newFakeCatalog()

	tags, err := reconcileTags(ctx, store, []string{"Algebra", " Algebra", "Algebra "})
	if err != nil {
		t.Fatalf("reconcileTags() error: %v", err)
	}
	if len(tags) != 1 {
		t.Errorf("reconcileTags() returned %d tags, want 1", len(tags))
	}
	if len(store.tags.order) != 1 {
		t.Errorf("store has %d tags, want 1", len(store.tags.order))
	}
}

// 并发赢家在首查和插入之间建出同名行：插入报告冲突后
// 必须复查并复用赢家的行，两边的调和都不许因竞争失败
func TestInsertTag_ConflictFallsBackToLookup(t *testing.T) {
	ctx := context.Background()
	store := newFakeCatalog()
	store.tags.raceWinner = &model.Tag{ID: "winner-id", Name: "Algebra"}

	tags, err := reconcileTags(ctx, store, []string{"Algebra"})
	if err != nil {
		t.Fatalf("reconcileTags() error: %v", err)
	}
	if len(tags) != 1 {
		t.Fatalf("reconcileTags() returned %d tags, want 1", len(tags))
	}
	if tags[0].ID != "winner-id" {
		t.Errorf("conflict recovery returned ID %q, want winner's %q", tags[0].ID, "winner-id")
	}
	// 首查未命中 + 冲突后复查命中 = 恰好两次查询
	if store.tags.lookups != 2 {
		t.Errorf("GetByName called %d times, want 2", store.tags.lookups)
	}
	// 输家不得另建新行
	if len(store.tags.order) != 0 {
		t.Errorf("loser created %d extra rows, want 0", len(store.tags.order))
	}
}

// 冲突后复查仍未命中且补插再次失败时，以 Conflict 上抛
func TestInsertTag_ConflictExhausted(t *testing.T) {
	ctx := context.Background()
	store := newFakeCatalog()
	store.tags.forceConflict = true

	_, err := reconcileTags(ctx, store, []string{"Algebra"})
	if !errors.Is(err, errs.ErrConflict) {
		t.Errorf("reconcileTags() error = %v, want ErrConflict", err)
	}
}

// ========== reconcileSources 测试 ==========

func TestReconcileSources(t *testing.T) {
	ctx := context.Background()
	store := newFakeCatalog()

	sources, err := reconcileSources(ctx, store, []string{"AMC 2019", "AMC 2019", "Putnam"})
	if err != nil {
		t.Fatalf("reconcileSources() error: %v", err)
	}
	if len(sources) != 2 {
		t.Errorf("reconcileSources() returned %d sources, want 2", len(sources))
	}

	store.sources.forceConflict = true
	if _, err := reconcileSources(ctx, store, []string{"IMO"}); !errors.Is(err, errs.ErrConflict) {
		t.Errorf("reconcileSources() error = %v, want ErrConflict", err)
	}
}

// 来源侧的冲突恢复路径与标签对称
func TestInsertSource_ConflictFallsBackToLookup(t *testing.T) {
	ctx := context.Background()
	store := newFakeCatalog()
	store.sources.raceWinner = &model.Source{ID: "winner-id", Name: "AMC 2019"}

	sources, err := reconcileSources(ctx, store, []string{"AMC 2019"})
	if err != nil {
		t.Fatalf("reconcileSources() error: %v", err)
	}
	if sources[0].ID != "winner-id" {
		t.Errorf("conflict recovery returned ID %q, want winner's %q", sources[0].ID, "winner-id")
	}
}
