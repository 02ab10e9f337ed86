package registry

import (
	"strings"
	"testing"
)

type stubSample struct{ id string }

func (s stubSample) ID() string { return s.id }
func (s stubSample) Title() string { return "Stub " + s.id }
func (s stubSample) Lines() []string { return []string{"R1", "U1"} }
func (s stubSample) Want() Want { return Want{NoIntersections: true} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Sample { return stubSample{"zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("zz-stub should exist after Register")
	}

	s, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if s.Title() != "Stub zz-stub" {
		t.Errorf("Title() = %q", s.Title())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = true
			if info.Title != "Stub zz-stub" {
				t.Errorf("List() title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include zz-stub")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Sample { return stubSample{"zz-dup"} })

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("duplicate Register should panic")
		}
		if !strings.Contains(r.(string), "zz-dup") {
			t.Errorf("panic message %q should name the sample", r)
		}
	}()
	Register("zz-dup", func() Sample { return stubSample{"zz-dup"} })
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-sample"); err == nil {
		t.Error("Create() of an unknown ID should fail")
	}
	if Exists("no-such-sample") {
		t.Error("Exists() of an unknown ID should be false")
	}
}

func TestListSorted(t *testing.T) {
	Register("zz-b", func() Sample { return stubSample{"zz-b"} })
	Register("zz-a", func() Sample { return stubSample{"zz-a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
