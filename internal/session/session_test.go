package session

import "testing"

func TestLifecycle(t *testing.T) {
	s := New()

	if _, ok := s.Username(); ok {
		t.Fatal("new session should be empty")
	}
	if s.Authenticated() {
		t.Fatal("new session should not be authenticated")
	}

	s.Set("ana")

	u, ok := s.Username()
	if !ok || u != "ana" {
		t.Fatalf("got (%q, %v), want (ana, true)", u, ok)
	}

	s.Clear()

	if _, ok := s.Username(); ok {
		t.Fatal("cleared session should be empty")
	}
}

func TestSet_IgnoresEmpty(t *testing.T) {
	s := New()

	s.Set("   ")
	if s.Authenticated() {
		t.Fatal("blank username must not create a session")
	}

	s.Set("ana")
	s.Set("")
	if u, _ := s.Username(); u != "ana" {
		t.Fatalf("empty Set must not clobber session, got %q", u)
	}
}

func TestSet_TrimsWhitespace(t *testing.T) {
	s := New()
	s.Set("  ana  ")
	if u, _ := s.Username(); u != "ana" {
		t.Fatalf("got %q", u)
	}
}

func TestRelogin(t *testing.T) {
	s := New()

	s.Set("ana")
	s.Clear()
	s.Set("ben")

	if u, _ := s.Username(); u != "ben" {
		t.Fatalf("got %q, want ben", u)
	}
}
