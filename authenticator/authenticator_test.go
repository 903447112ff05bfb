package authenticator

import "testing"

func TestAdminSetMembership(t *testing.T) {
	set := NewAdminSet([]string{"5935306519", "6356252393"})

	if !set.IsAdmin("5935306519") {
		t.Error("Expected 5935306519 to be an admin")
	}
	if !set.IsAdmin("6356252393") {
		t.Error("Expected 6356252393 to be an admin")
	}
	if set.IsAdmin("42") {
		t.Error("Expected 42 not to be an admin")
	}
	if set.IsAdmin("") {
		t.Error("Expected empty id not to be an admin")
	}
	if set.Size() != 2 {
		t.Errorf("Expected size 2, got %d", set.Size())
	}
}

func TestAdminSetDeduplicates(t *testing.T) {
	set := NewAdminSet([]string{"1", "1", "2"})
	if set.Size() != 2 {
		t.Errorf("Expected duplicates to collapse, got size %d", set.Size())
	}
}
