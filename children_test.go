package dirtree

import "testing"

func TestChildSet(t *testing.T) {
	c := newChildSet()

	if got := listChildren(c); got != "" {
		t.Fatalf("listChildren(empty) = %q, want \"\"", got)
	}

	a, b := newNode(nil, "a"), newNode(nil, "b")
	if !c.insert("b", b) {
		t.Fatal("expected first insert of b to succeed")
	}
	if !c.insert("a", a) {
		t.Fatal("expected first insert of a to succeed")
	}
	if c.insert("a", a) {
		t.Fatal("expected second insert of a to fail")
	}

	if got, want := listChildren(c), "a,b"; got != want {
		t.Fatalf("listChildren = %q, want %q", got, want)
	}

	if got, ok := c.get("a"); !ok || got != a {
		t.Fatal("get(a) did not return the inserted node")
	}

	if got, ok := c.remove("a"); !ok || got != a {
		t.Fatal("remove(a) did not return the removed node")
	}
	if _, ok := c.remove("a"); ok {
		t.Fatal("expected second remove of a to fail")
	}

	if got, want := listChildren(c), "b"; got != want {
		t.Fatalf("listChildren = %q, want %q", got, want)
	}
	if c.size() != 1 {
		t.Fatalf("size = %d, want 1", c.size())
	}
}
