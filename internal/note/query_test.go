package note

import (
	"testing"
	"time"
)

func testNote(id, title, content string, tags []string, updated time.Time) Note {
	return Note{
		ID:        id,
		Title:     title,
		Content:   content,
		Tags:      tags,
		CreatedAt: updated,
		UpdatedAt: updated,
	}
}

func testCollection() []Note {
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	return []Note{
		testNote("nt-3", "Standup notes", "discuss roadmap", []string{"work"}, base.Add(3*time.Hour)),
		testNote("nt-2", "Groceries", "Milk, eggs", []string{"home", "errands"}, base.Add(2*time.Hour)),
		testNote("nt-1", "Reading list", "The Go Programming Language", []string{"books", "home"}, base.Add(1*time.Hour)),
	}
}

func idsOf(notes []Note) []string {
	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	return ids
}

func TestVisibleNoFilters(t *testing.T) {
	got := Visible(testCollection(), "", "")
	if len(got) != 3 {
		t.Fatalf("expected all 3 notes, got %d", len(got))
	}
}

func TestVisibleSearch(t *testing.T) {
	notes := testCollection()
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title match case-insensitive", "GROCER", []string{"nt-2"}},
		{"content match", "eggs", []string{"nt-2"}},
		{"tag substring match", "err", []string{"nt-2"}},
		{"multiple matches sorted by recency", "o", []string{"nt-3", "nt-2", "nt-1"}},
		{"no match", "xyz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idsOf(Visible(notes, tt.query, ""))
			if len(got) != len(tt.want) {
				t.Fatalf("Visible(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Visible(%q) = %v, want %v", tt.query, got, tt.want)
					break
				}
			}
		})
	}
}

func TestVisibleTagFilter(t *testing.T) {
	notes := testCollection()

	got := idsOf(Visible(notes, "", "home"))
	if len(got) != 2 || got[0] != "nt-2" || got[1] != "nt-1" {
		t.Errorf(`tag "home" = %v, want [nt-2 nt-1]`, got)
	}

	if got := Visible(notes, "", "missing"); len(got) != 0 {
		t.Errorf("unknown tag should match nothing, got %v", idsOf(got))
	}
}

func TestVisibleFiltersAreConjunctive(t *testing.T) {
	notes := testCollection()

	// "home" tag matches nt-2 and nt-1; query "milk" matches only nt-2.
	got := idsOf(Visible(notes, "milk", "home"))
	if len(got) != 1 || got[0] != "nt-2" {
		t.Errorf("conjunction = %v, want [nt-2]", got)
	}

	// Query matches a note the tag filter excludes: nothing passes.
	if got := Visible(notes, "roadmap", "home"); len(got) != 0 {
		t.Errorf("tag filter should exclude query match, got %v", idsOf(got))
	}
}

func TestVisibleSortedByUpdatedAtDescending(t *testing.T) {
	// Input deliberately out of recency order.
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	notes := []Note{
		testNote("nt-old", "old", "x", nil, base),
		testNote("nt-new", "new", "x", nil, base.Add(2*time.Hour)),
		testNote("nt-mid", "mid", "x", nil, base.Add(time.Hour)),
	}

	got := Visible(notes, "", "")
	for i := 1; i < len(got); i++ {
		if got[i].UpdatedAt.After(got[i-1].UpdatedAt) {
			t.Fatalf("visible list not non-increasing in updatedAt: %v", idsOf(got))
		}
	}
	if got[0].ID != "nt-new" || got[2].ID != "nt-old" {
		t.Errorf("order = %v, want [nt-new nt-mid nt-old]", idsOf(got))
	}
}

func TestVisibleSortIsStableOnTies(t *testing.T) {
	at := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	notes := []Note{
		testNote("nt-a", "a", "x", nil, at),
		testNote("nt-b", "b", "x", nil, at),
		testNote("nt-c", "c", "x", nil, at),
	}

	got := idsOf(Visible(notes, "", ""))
	want := []string{"nt-a", "nt-b", "nt-c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tied notes reordered: %v, want %v", got, want)
		}
	}
}

func TestVisibleDoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	notes := []Note{
		testNote("nt-old", "old", "x", nil, base),
		testNote("nt-new", "new", "x", nil, base.Add(time.Hour)),
	}

	Visible(notes, "", "")
	if notes[0].ID != "nt-old" || notes[1].ID != "nt-new" {
		t.Error("Visible reordered the input slice")
	}
}

func TestAllTags(t *testing.T) {
	got := AllTags(testCollection())
	want := []string{"books", "errands", "home", "work"}
	if len(got) != len(want) {
		t.Fatalf("AllTags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllTags = %v, want %v", got, want)
			break
		}
	}
}

func TestAllTagsEmptyCollection(t *testing.T) {
	if got := AllTags(nil); len(got) != 0 {
		t.Errorf("AllTags(nil) = %v, want empty", got)
	}
}

func TestAllTagsIgnoresFilters(t *testing.T) {
	// AllTags is computed over the full collection regardless of any active
	// search or tag selection; it has no filter parameters at all. This test
	// pins the union/dedup behavior with duplicates across notes.
	at := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	notes := []Note{
		testNote("nt-1", "a", "x", []string{"zeta", "alpha"}, at),
		testNote("nt-2", "b", "x", []string{"alpha", "beta"}, at),
	}

	got := AllTags(notes)
	want := []string{"alpha", "beta", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("AllTags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllTags = %v, want %v", got, want)
			break
		}
	}
}
