package listing

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/gem5-vision/catalogd/internal/domain"
	"github.com/gem5-vision/catalogd/internal/domain/resource"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	listFn func(ctx context.Context, versions []string) ([]resource.Resource, error)
}

func (m *mockRepo) ListByGem5Versions(ctx context.Context, versions []string) ([]resource.Resource, error) {
	if m.listFn != nil {
		return m.listFn(ctx, versions)
	}
	return nil, nil
}

func res(id, version string, gem5Versions ...string) resource.Resource {
	return resource.Reconstruct(id, version, "", "", "", nil, gem5Versions, 0, nil)
}

func TestList_ExpandsPrefixes(t *testing.T) {
	var gotPrefixes []string
	repo := &mockRepo{
		listFn: func(_ context.Context, versions []string) ([]resource.Resource, error) {
			gotPrefixes = versions
			return nil, nil
		},
	}
	svc := New(repo)

	if _, err := svc.List(context.Background(), "25.0.0.1", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"25.0", "25.0.0", "25.0.0.1"}
	if !reflect.DeepEqual(gotPrefixes, want) {
		t.Errorf("expected prefixes %v, got %v", want, gotPrefixes)
	}
}

func TestList_TwoPartVersion(t *testing.T) {
	var gotPrefixes []string
	repo := &mockRepo{
		listFn: func(_ context.Context, versions []string) ([]resource.Resource, error) {
			gotPrefixes = versions
			return nil, nil
		},
	}
	svc := New(repo)

	if _, err := svc.List(context.Background(), "23.1", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(gotPrefixes, []string{"23.1"}) {
		t.Errorf("unexpected prefixes: %v", gotPrefixes)
	}
}

func TestList_BareMajorRejected(t *testing.T) {
	svc := New(&mockRepo{})

	_, err := svc.List(context.Background(), "25", false)
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestList_OutputShape(t *testing.T) {
	repo := &mockRepo{
		listFn: func(_ context.Context, _ []string) ([]resource.Resource, error) {
			return []resource.Resource{res("a", "1.0.0", "25.0")}, nil
		},
	}
	svc := New(repo)

	docs, err := svc.List(context.Background(), "25.0", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0]["database"] != "gem5-vision" {
		t.Errorf("expected provenance tag, got %v", docs[0]["database"])
	}
}

func TestList_LatestOnly(t *testing.T) {
	repo := &mockRepo{
		listFn: func(_ context.Context, _ []string) ([]resource.Resource, error) {
			return []resource.Resource{
				res("a", "1.0.0", "25.0"),
				res("a", "2.0.0", "25.0"),
				res("b", "1.0.0", "25.0"),
			}, nil
		},
	}
	svc := New(repo)

	docs, err := svc.List(context.Background(), "25.0", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0]["id"] != "a" || docs[0]["resource_version"] != "2.0.0" {
		t.Errorf("expected latest version of a, got %v", docs[0])
	}
}

func TestList_AllVersionsWithoutLatestOnly(t *testing.T) {
	repo := &mockRepo{
		listFn: func(_ context.Context, _ []string) ([]resource.Resource, error) {
			return []resource.Resource{
				res("a", "1.0.0", "25.0"),
				res("a", "2.0.0", "25.0"),
			}, nil
		},
	}
	svc := New(repo)

	docs, err := svc.List(context.Background(), "25.0", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected both versions, got %d", len(docs))
	}
}

func TestList_RepoError(t *testing.T) {
	repo := &mockRepo{
		listFn: func(_ context.Context, _ []string) ([]resource.Resource, error) {
			return nil, errors.New("backend down")
		},
	}
	svc := New(repo)

	if _, err := svc.List(context.Background(), "25.0", false); err == nil {
		t.Fatal("expected error")
	}
}
