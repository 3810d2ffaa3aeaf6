package storage

import (
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := Open(filepath.Join(t.TempDir(), "notes.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestGetMissingKey(t *testing.T) {
	kv := openTestKV(t)

	_, ok, err := kv.Get("notes")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("expected ok=false for missing key")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	kv := openTestKV(t)

	want := `[{"id":"nt-a1b2c3d4"}]`
	if err := kv.Put("notes", []byte(want)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := kv.Get("notes")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true after Put")
	}
	if string(got) != want {
		t.Errorf("Get = %q, want %q", got, want)
	}
}

func TestPutOverwrites(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Put("notes", []byte("[1]")); err != nil {
		t.Fatalf("first Put failed: %v", err)
	}
	if err := kv.Put("notes", []byte("[2]")); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}

	got, _, err := kv.Get("notes")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "[2]" {
		t.Errorf("Get = %q, want overwritten value [2]", got)
	}
}

func TestOpenCreatesDataDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "notes.db")
	kv, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer kv.Close()

	if err := kv.Put("k", []byte("v")); err != nil {
		t.Errorf("Put after nested Open failed: %v", err)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.db")

	kv, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := kv.Put("notes", []byte("[]")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	kv.Close()

	kv2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer kv2.Close()

	got, ok, err := kv2.Get("notes")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if !ok || string(got) != "[]" {
		t.Errorf("Get after reopen = %q, ok=%v; want [] with ok=true", got, ok)
	}
}
