package blob

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

// openers builds one store of each driver backed by a fresh temp location.
func openers(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	fs, err := NewFS(filepath.Join(dir, "fs"))
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	bolt, err := NewBolt(filepath.Join(dir, "planner.db"))
	if err != nil {
		t.Fatalf("NewBolt: %v", err)
	}
	sq, err := NewSQLite(filepath.Join(dir, "planner.sqlite"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}

	stores := map[string]Store{
		DriverFile:   fs,
		DriverBolt:   bolt,
		DriverSQLite: sq,
		DriverMemory: NewMemory(),
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestStoreContract(t *testing.T) {
	for name, s := range openers(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Get(KeyEvents); !errors.Is(err, ErrNoKey) {
				t.Fatalf("Get on empty store: err = %v, want ErrNoKey", err)
			}

			payload := []byte(`[{"title":"Standup"}]`)
			if err := s.Put(KeyEvents, payload); err != nil {
				t.Fatalf("Put: %v", err)
			}
			got, err := s.Get(KeyEvents)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if !bytes.Equal(got, payload) {
				t.Fatalf("Get = %q, want %q", got, payload)
			}

			// Overwrite replaces, other keys stay independent.
			if err := s.Put(KeyEvents, []byte(`[]`)); err != nil {
				t.Fatal(err)
			}
			if err := s.Put(KeyWorkEmail, []byte("me@example.com")); err != nil {
				t.Fatal(err)
			}
			got, err = s.Get(KeyEvents)
			if err != nil || string(got) != `[]` {
				t.Fatalf("after overwrite: %q, %v", got, err)
			}
			got, err = s.Get(KeyWorkEmail)
			if err != nil || string(got) != "me@example.com" {
				t.Fatalf("work email: %q, %v", got, err)
			}

			if err := s.Delete(KeyEvents); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := s.Get(KeyEvents); !errors.Is(err, ErrNoKey) {
				t.Fatalf("Get after Delete: err = %v, want ErrNoKey", err)
			}
			// Deleting a missing key is not an error.
			if err := s.Delete(KeyEvents); err != nil {
				t.Fatalf("Delete missing key: %v", err)
			}
		})
	}
}

func TestFSRejectsTraversal(t *testing.T) {
	fs, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Close()

	for _, key := range []string{"../escape", "a/b", `a\b`, ".hidden", ""} {
		if err := fs.Put(key, []byte("x")); err == nil {
			t.Errorf("Put(%q) accepted, want error", key)
		}
	}
}

func TestOpenDispatch(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		driver string
		path   string
	}{
		{DriverMemory, ""},
		{DriverFile, filepath.Join(dir, "data")},
		{DriverBolt, filepath.Join(dir, "b.db")},
		{DriverSQLite, filepath.Join(dir, "s.db")},
	}
	for _, tt := range tests {
		s, err := Open(tt.driver, tt.path)
		if err != nil {
			t.Fatalf("Open(%q): %v", tt.driver, err)
		}
		if err := s.Put("k", []byte("v")); err != nil {
			t.Errorf("Open(%q): Put: %v", tt.driver, err)
		}
		s.Close()
	}

	if _, err := Open("redis", ""); err == nil {
		t.Error("Open with unknown driver should fail")
	}
}
