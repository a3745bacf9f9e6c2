package core

import "testing"

func TestDirectoryJoinIsIdempotent(t *testing.T) {
	d := NewDirectory()

	if !d.Join("general", "a") {
		t.Fatal("first join should report newly added")
	}
	if d.Join("general", "a") {
		t.Fatal("second join should be a no-op")
	}
	if members := d.Members("general"); len(members) != 1 {
		t.Fatalf("members = %v, want one", members)
	}
}

func TestDirectoryLeaveEvictsEmptyRoom(t *testing.T) {
	d := NewDirectory()
	d.Join("private_a_b", "a")
	d.Join("private_a_b", "b")

	d.Leave("private_a_b", "a")
	if members := d.Members("private_a_b"); len(members) != 1 {
		t.Fatalf("members = %v, want one", members)
	}

	d.Leave("private_a_b", "b")
	if d.Members("private_a_b") != nil {
		t.Fatal("emptied room should be dropped")
	}
	if d.Leave("private_a_b", "b") {
		t.Fatal("leaving an unknown room should report false")
	}
}

func TestDirectoryLeaveAll(t *testing.T) {
	d := NewDirectory()
	d.Join("general", "a")
	d.Join("general", "b")
	d.Join("private_a_b", "a")

	left := d.LeaveAll("a")
	if len(left) != 2 {
		t.Fatalf("left %v, want two rooms", left)
	}
	if d.Contains("general", "a") {
		t.Fatal("membership should be gone")
	}
	if !d.Contains("general", "b") {
		t.Fatal("other members must be untouched")
	}
}

func TestBanListFoldsCase(t *testing.T) {
	b := NewBanList()

	if !b.Ban("  BadGuy ") {
		t.Fatal("first ban should report true")
	}
	if b.Ban("badguy") {
		t.Fatal("duplicate ban should report false")
	}
	if !b.IsBanned("BADGUY") {
		t.Fatal("ban check must be case-insensitive")
	}
	if !b.Unban("BadGuy") {
		t.Fatal("unban should report true")
	}
	if b.IsBanned("badguy") {
		t.Fatal("name should no longer be banned")
	}
}

func TestCatalogLookup(t *testing.T) {
	c := DefaultCatalog()

	item, ok := c.Item("color_red")
	if !ok || item.Kind != ItemKindColor || item.Cost <= 0 {
		t.Fatalf("unexpected item: %+v ok=%v", item, ok)
	}
	if _, ok := c.Item("color_plaid"); ok {
		t.Fatal("unknown item should not resolve")
	}
	if len(c.Items()) == 0 {
		t.Fatal("default catalog should not be empty")
	}
}
