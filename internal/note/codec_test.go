package note

import (
	"strings"
	"testing"
	"time"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	at := time.Date(2026, 2, 14, 8, 30, 0, 0, time.UTC)
	notes := []Note{
		{ID: "nt-aa11bb22", Title: "Groceries", Content: "Milk, eggs", Tags: []string{"home"}, CreatedAt: at, UpdatedAt: at.Add(time.Minute)},
		{ID: "nt-cc33dd44", Title: "", Content: "untitled body", Tags: nil, CreatedAt: at, UpdatedAt: at},
	}

	data, err := encodeCollection(notes)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	got, err := decodeCollection(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(got) != len(notes) {
		t.Fatalf("expected %d notes, got %d", len(notes), len(got))
	}
	for i, n := range got {
		want := notes[i]
		if n.ID != want.ID || n.Title != want.Title || n.Content != want.Content {
			t.Errorf("note %d mismatch: got %+v, want %+v", i, n, want)
		}
		if !n.CreatedAt.Equal(want.CreatedAt) || !n.UpdatedAt.Equal(want.UpdatedAt) {
			t.Errorf("note %d timestamps mismatch: got %v/%v, want %v/%v",
				i, n.CreatedAt, n.UpdatedAt, want.CreatedAt, want.UpdatedAt)
		}
	}
}

func TestEncodeEmptyCollection(t *testing.T) {
	data, err := encodeCollection(nil)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("empty collection = %s, want []", data)
	}
}

func TestEncodeUsesRFC3339AndNeverNullTags(t *testing.T) {
	at := time.Date(2026, 2, 14, 8, 30, 0, 0, time.UTC)
	data, err := encodeCollection([]Note{
		{ID: "nt-1", Title: "t", Content: "c", Tags: nil, CreatedAt: at, UpdatedAt: at},
	})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	s := string(data)
	if !strings.Contains(s, `"createdAt":"2026-02-14T08:30:00Z"`) {
		t.Errorf("createdAt not RFC 3339: %s", s)
	}
	if !strings.Contains(s, `"tags":[]`) {
		t.Errorf("nil tags should serialize as [], got: %s", s)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"truncated`},
		{"object not array", `{"id":"nt-1"}`},
		{"bad createdAt", `[{"id":"nt-1","title":"t","content":"c","tags":[],"createdAt":"nope","updatedAt":"2026-02-14T08:30:00Z"}]`},
		{"bad updatedAt", `[{"id":"nt-1","title":"t","content":"c","tags":[],"createdAt":"2026-02-14T08:30:00Z","updatedAt":"nope"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeCollection([]byte(tt.data)); err == nil {
				t.Error("expected decode error")
			}
		})
	}
}

func TestDecodeNormalizesTags(t *testing.T) {
	data := `[{"id":"nt-1","title":"t","content":"c","tags":[" Home ","home","WORK",""],"createdAt":"2026-02-14T08:30:00Z","updatedAt":"2026-02-14T08:30:00Z"}]`

	got, err := decodeCollection([]byte(data))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	tags := got[0].Tags
	if len(tags) != 2 || tags[0] != "home" || tags[1] != "work" {
		t.Errorf("tags = %v, want [home work]", tags)
	}
}
