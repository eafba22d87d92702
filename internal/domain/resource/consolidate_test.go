package resource

import "testing"

func entry(id, version string, score float64) Resource {
	return Reconstruct(id, version, "", "", "", nil, nil, score, nil)
}

func TestConsolidate_KeepsLatestVersion(t *testing.T) {
	out := Consolidate([]Resource{
		entry("disk-img", "1.0.0", 1.0),
		entry("disk-img", "2.0.0", 1.0),
		entry("disk-img", "1.5.0", 1.0),
	})

	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].ResourceVersion() != "2.0.0" {
		t.Errorf("version = %q, want 2.0.0", out[0].ResourceVersion())
	}
}

func TestConsolidate_CarriesMaxScoreAcrossVersions(t *testing.T) {
	// The best-scoring version and the latest version are different
	// entries; the representative combines both.
	out := Consolidate([]Resource{
		entry("disk-img", "1.0.0", 9.0),
		entry("disk-img", "2.0.0", 1.0),
	})

	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].ResourceVersion() != "2.0.0" {
		t.Errorf("version = %q, want 2.0.0", out[0].ResourceVersion())
	}
	if out[0].Score() != 9.0 {
		t.Errorf("score = %v, want 9.0", out[0].Score())
	}
}

func TestConsolidate_FirstSeenOrder(t *testing.T) {
	out := Consolidate([]Resource{
		entry("b", "1.0.0", 1.0),
		entry("a", "1.0.0", 2.0),
		entry("b", "2.0.0", 0.5),
	})

	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].ID() != "b" || out[1].ID() != "a" {
		t.Errorf("order = [%s %s], want [b a]", out[0].ID(), out[1].ID())
	}
}

func TestConsolidate_EqualVersionsFirstWins(t *testing.T) {
	first := Reconstruct("x", "1.0.0", "kernel", "", "", nil, nil, 1.0, nil)
	second := Reconstruct("x", "1.0.0", "binary", "", "", nil, nil, 1.0, nil)

	out := Consolidate([]Resource{first, second})
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].Category() != "kernel" {
		t.Errorf("category = %q, want first-seen entry", out[0].Category())
	}
}

func TestConsolidate_DropsEntriesWithoutID(t *testing.T) {
	out := Consolidate([]Resource{
		entry("", "1.0.0", 1.0),
		entry("a", "1.0.0", 1.0),
	})

	if len(out) != 1 || out[0].ID() != "a" {
		t.Fatalf("out = %v, want only 'a'", out)
	}
}

func TestConsolidate_MalformedVersionsRankLowest(t *testing.T) {
	out := Consolidate([]Resource{
		entry("a", "weird", 1.0),
		entry("a", "0.0.1", 1.0),
	})

	if out[0].ResourceVersion() != "0.0.1" {
		t.Errorf("version = %q, want 0.0.1", out[0].ResourceVersion())
	}
}

func TestConsolidate_Empty(t *testing.T) {
	if out := Consolidate(nil); len(out) != 0 {
		t.Errorf("out = %v, want empty", out)
	}
}

func TestLatest(t *testing.T) {
	out := Latest([]Resource{
		entry("a", "1.0.0", 0),
		entry("a", "3.0.0", 0),
		entry("b", "2.0.0", 0),
		entry("a", "2.0.0", 0),
	})

	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].ID() != "a" || out[0].ResourceVersion() != "3.0.0" {
		t.Errorf("first = %s/%s, want a/3.0.0", out[0].ID(), out[0].ResourceVersion())
	}
	if out[1].ID() != "b" || out[1].ResourceVersion() != "2.0.0" {
		t.Errorf("second = %s/%s, want b/2.0.0", out[1].ID(), out[1].ResourceVersion())
	}
}
