package planner

import (
	"errors"
	"testing"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/blob"
)

func memStore(t *testing.T) (*Store, blob.Store) {
	t.Helper()
	bs := blob.NewMemory()
	return NewStore(bs), bs
}

func TestLoadEmptyWhenAbsent(t *testing.T) {
	s, _ := memStore(t)
	list, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("len = %d, want 0", len(list))
	}
}

func TestLoadRecoversFromGarbage(t *testing.T) {
	s, bs := memStore(t)
	if err := bs.Put(blob.KeyEvents, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	list, err := s.Load()
	if err != nil {
		t.Fatalf("Load should soft-fail, got %v", err)
	}
	if len(list) != 0 {
		t.Errorf("len = %d, want 0", len(list))
	}
}

func TestAddAssignsIDAndPersists(t *testing.T) {
	s, bs := memStore(t)
	list, err := s.Add(validEvent())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	if list[0].ID == "" {
		t.Error("created event has no id")
	}

	// A fresh store over the same blob must see the event.
	reloaded, err := NewStore(bs).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(reloaded) != 1 || reloaded[0].Title != "Standup" {
		t.Errorf("reloaded = %+v", reloaded)
	}
}

func TestAddRejectsInvalid(t *testing.T) {
	s, _ := memStore(t)
	if _, err := s.Add(Event{Title: "", Type: "Work", Date: "2024-03-04", Time: "09:00"}); err == nil {
		t.Fatal("expected validation error")
	}
	list, _ := s.Load()
	if len(list) != 0 {
		t.Errorf("invalid add must not persist, len = %d", len(list))
	}
}

func TestDeleteByIndex(t *testing.T) {
	s, _ := memStore(t)
	for _, title := range []string{"a", "b", "c"} {
		ev := validEvent()
		ev.Title = title
		if _, err := s.Add(ev); err != nil {
			t.Fatal(err)
		}
	}

	list, err := s.Delete(1)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].Title != "a" || list[1].Title != "c" {
		t.Errorf("relative order broken: %q, %q", list[0].Title, list[1].Title)
	}

	reloaded, _ := s.Load()
	if len(reloaded) != 2 {
		t.Errorf("delete not persisted, len = %d", len(reloaded))
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	s, _ := memStore(t)
	if _, err := s.Add(validEvent()); err != nil {
		t.Fatal(err)
	}
	for _, idx := range []int{-1, 1, 99} {
		_, err := s.Delete(idx)
		if !errors.Is(err, apperr.ErrIndexOutOfRange) {
			t.Errorf("Delete(%d) err = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
	list, _ := s.Load()
	if len(list) != 1 {
		t.Errorf("failed delete must leave state intact, len = %d", len(list))
	}
}

func TestDeleteByID(t *testing.T) {
	s, _ := memStore(t)
	list, err := s.Add(validEvent())
	if err != nil {
		t.Fatal(err)
	}
	id := list[0].ID

	if _, err := s.DeleteByID(id); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if _, err := s.DeleteByID(id); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestGetByID(t *testing.T) {
	s, _ := memStore(t)
	list, err := s.Add(validEvent())
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(list[0].ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Standup" {
		t.Errorf("title = %q", got.Title)
	}
	if _, err := s.Get("missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestWorkEmailRoundTrip(t *testing.T) {
	s, _ := memStore(t)

	email, err := s.WorkEmail()
	if err != nil {
		t.Fatalf("WorkEmail: %v", err)
	}
	if email != "" {
		t.Errorf("unset email = %q, want empty", email)
	}

	if err := s.SetWorkEmail("me@example.com"); err != nil {
		t.Fatalf("SetWorkEmail: %v", err)
	}
	email, _ = s.WorkEmail()
	if email != "me@example.com" {
		t.Errorf("email = %q", email)
	}
}

func TestSetWorkEmailRejectsInvalid(t *testing.T) {
	s, _ := memStore(t)
	for _, bad := range []string{"", "not-an-email", "@", "a b@c.com"} {
		if err := s.SetWorkEmail(bad); err == nil {
			t.Errorf("SetWorkEmail(%q) should fail", bad)
		}
	}
}

func TestStoreOverFileDriver(t *testing.T) {
	bs, err := blob.NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	s := NewStore(bs)

	if _, err := s.Add(validEvent()); err != nil {
		t.Fatalf("Add: %v", err)
	}
	list, err := NewStore(bs).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("len = %d, want 1", len(list))
	}
}
