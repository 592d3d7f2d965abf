package registry

import "testing"

func TestRegisterAndList(t *testing.T) {
	Reset()
	defer Reset()

	Register(Entry{ID: "b", Order: 2})
	Register(Entry{ID: "c", Order: 1})
	Register(Entry{ID: "a", Order: 2})

	got := List()
	want := []string{"c", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("List() returned %d entries, expected %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("List()[%d] = %q, expected %q", i, got[i].ID, id)
		}
	}
}

func TestLookup(t *testing.T) {
	Reset()
	defer Reset()

	Register(Entry{ID: "intro", Name: "Intro", Plan: "#@#"})

	e, err := Lookup("intro")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if e.Name != "Intro" || e.Plan != "#@#" {
		t.Errorf("Lookup() = %+v", e)
	}
	if !Exists("intro") {
		t.Error("Exists() = false for a registered level")
	}

	if _, err := Lookup("missing"); err == nil {
		t.Error("Lookup() should fail for an unknown level")
	}
	if Exists("missing") {
		t.Error("Exists() = true for an unknown level")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Reset()
	defer Reset()

	Register(Entry{ID: "dup"})

	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on a duplicate ID")
		}
	}()
	Register(Entry{ID: "dup"})
}
