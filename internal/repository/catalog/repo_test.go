package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/gem5-vision/catalogd/internal/db"
	"github.com/gem5-vision/catalogd/internal/domain"
)

func TestFind_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.jsonGetFn = func(_ context.Context, key string, _ ...string) ([]byte, error) {
		if key != "catalog:resource:riscv-disk-img:1.0.0" {
			t.Errorf("unexpected key: %s", key)
		}
		return []byte(`{"id":"riscv-disk-img","resource_version":"1.0.0"}`), nil
	}

	res, err := repo.Find(ctx, "riscv-disk-img", "1.0.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID() != "riscv-disk-img" || res.ResourceVersion() != "1.0.0" {
		t.Errorf("unexpected resource: %s %s", res.ID(), res.ResourceVersion())
	}
}

func TestFind_NotFound(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.jsonGetFn = func(_ context.Context, _ string, _ ...string) ([]byte, error) {
		return nil, db.ErrKeyNotFound
	}

	_, err := repo.Find(ctx, "missing", "1.0.0")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFind_StoreError(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.jsonGetFn = func(_ context.Context, _ string, _ ...string) ([]byte, error) {
		return nil, errors.New("connection refused")
	}

	_, err := repo.Find(ctx, "x", "1.0.0")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Error("network errors must not map to ErrNotFound")
	}
}

func TestFindMulti_SkipsMissing(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.jsonGetMultiFn = func(_ context.Context, keys []string) ([][]byte, error) {
		if len(keys) != 3 {
			t.Fatalf("expected 3 keys, got %d", len(keys))
		}
		if keys[0] != "catalog:resource:a:1.0.0" {
			t.Errorf("unexpected key: %s", keys[0])
		}
		return [][]byte{
			[]byte(`{"id":"a","resource_version":"1.0.0"}`),
			nil, // missing
			[]byte(`{"id":"c","resource_version":"3.0.0"}`),
		}, nil
	}

	resources, err := repo.FindMulti(ctx,
		[]string{"a", "b", "c"},
		[]string{"1.0.0", "2.0.0", "3.0.0"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(resources))
	}
	if resources[0].ID() != "a" || resources[1].ID() != "c" {
		t.Errorf("unexpected ids: %s, %s", resources[0].ID(), resources[1].ID())
	}
}

func TestFindMulti_Empty(t *testing.T) {
	repo, _ := newTestRepo(t)
	resources, err := repo.FindMulti(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resources != nil {
		t.Errorf("expected nil, got %v", resources)
	}
}

func TestFindAllVersions_QueriesExactIDField(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.searchTextFn = func(_ context.Context, q *db.TextQuery) (*db.SearchResult, error) {
		if q.Query != `@id_tag:{riscv\-disk\-img}` {
			t.Errorf("unexpected query: %q", q.Query)
		}
		if q.WithScores {
			t.Error("version lookup must not request scores")
		}
		return &db.SearchResult{
			Total: 2,
			Entries: []db.SearchEntry{
				{Key: "k1", Fields: map[string]string{"$": `{"id":"riscv-disk-img","resource_version":"1.0.0"}`}},
				{Key: "k2", Fields: map[string]string{"$": `{"id":"riscv-disk-img","resource_version":"2.0.0"}`}},
			},
		}, nil
	}

	resources, err := repo.FindAllVersions(ctx, "riscv-disk-img")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(resources))
	}
}

func TestListByGem5Versions_BuildsDisjunction(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.searchTextFn = func(_ context.Context, q *db.TextQuery) (*db.SearchResult, error) {
		if q.Query != `@gem5_versions:{23\.1|23\.1\.0}` {
			t.Errorf("unexpected query: %q", q.Query)
		}
		return &db.SearchResult{}, nil
	}

	if _, err := repo.ListByGem5Versions(ctx, []string{"23.1", "23.1.0"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListByGem5Versions_Empty(t *testing.T) {
	repo, _ := newTestRepo(t)
	resources, err := repo.ListByGem5Versions(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resources != nil {
		t.Errorf("expected nil, got %v", resources)
	}
}

func TestFieldValues(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.tagValuesFn = func(_ context.Context, index, field string) ([]string, error) {
		if index != "catalog:idx" || field != "category" {
			t.Errorf("unexpected call: %s %s", index, field)
		}
		return []string{"binary", "kernel"}, nil
	}

	values, err := repo.FieldValues(ctx, "category")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 2 || values[0] != "binary" {
		t.Errorf("unexpected values: %v", values)
	}
}

func TestFieldValues_Error(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.tagValuesFn = func(_ context.Context, _, _ string) ([]string, error) {
		return nil, errors.New("no such index")
	}

	if _, err := repo.FieldValues(context.Background(), "category"); err == nil {
		t.Fatal("expected error")
	}
}
