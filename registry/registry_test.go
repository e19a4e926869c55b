package registry

import "testing"

func TestFindReturnsEarliestInsert(t *testing.T) {
	r := New[string](nil)
	r.Insert("a", "first")
	r.Insert("b", "other")
	r.Insert("a", "second")

	got, ok := r.Find("a")
	if !ok || got != "first" {
		t.Fatalf("Find(a) = %q, %v, want first, true", got, ok)
	}
	if all := r.All("a"); len(all) != 2 || all[0] != "first" || all[1] != "second" {
		t.Fatalf("All(a) = %v, want [first second]", all)
	}
}

func TestFindMiss(t *testing.T) {
	r := New[string](nil)
	if got, ok := r.Find("missing"); ok || got != "" {
		t.Fatalf("Find on empty registry = %q, %v", got, ok)
	}
	if r.Has("missing") {
		t.Error("Has(missing) = true on empty registry")
	}
}

func TestRemoveFirstPromotesNextDuplicate(t *testing.T) {
	r := New[string](nil)
	r.Insert("a", "first")
	r.Insert("a", "second")

	r.RemoveFirst("a")
	if got, ok := r.Find("a"); !ok || got != "second" {
		t.Fatalf("after RemoveFirst, Find(a) = %q, %v, want second, true", got, ok)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}

	// Removing an absent name must be a no-op.
	r.RemoveFirst("missing")
	if r.Len() != 1 {
		t.Errorf("Len after removing absent name = %d, want 1", r.Len())
	}
}

func TestRemoveAll(t *testing.T) {
	r := New[string](nil)
	r.Insert("a", "first")
	r.Insert("b", "keep")
	r.Insert("a", "second")

	r.RemoveAll("a")
	if r.Has("a") {
		t.Error("Has(a) = true after RemoveAll")
	}
	if got, ok := r.Find("b"); !ok || got != "keep" {
		t.Errorf("Find(b) = %q, %v after unrelated RemoveAll", got, ok)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestRemoveItemTargetsExactEntry(t *testing.T) {
	r := New[int](nil)
	r.Insert("n", 10)
	r.Insert("n", 20)

	if !r.RemoveItem(20) {
		t.Fatal("RemoveItem(20) = false")
	}
	if got, _ := r.Find("n"); got != 10 {
		t.Errorf("Find(n) = %d, want 10", got)
	}
	if r.RemoveItem(99) {
		t.Error("RemoveItem on absent item = true")
	}
}

func TestEachVisitsInsertionOrder(t *testing.T) {
	r := New[int](nil)
	r.Insert("c", 3)
	r.Insert("a", 1)
	r.Insert("b", 2)
	r.RemoveFirst("a")
	r.Insert("a", 4)

	var order []int
	r.Each(func(_ string, v int) { order = append(order, v) })
	want := []int{3, 2, 4}
	if len(order) != len(want) {
		t.Fatalf("visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visited %v, want %v", order, want)
		}
	}
}

func TestClearRunsDestructorAndResets(t *testing.T) {
	var destroyed []int
	r := New[int](func(v int) { destroyed = append(destroyed, v) })
	r.Insert("a", 1)
	r.Insert("b", 2)

	r.Clear()
	if len(destroyed) != 2 {
		t.Fatalf("destructor ran %d times, want 2", len(destroyed))
	}
	if r.Len() != 0 || r.Has("a") {
		t.Error("registry not empty after Clear")
	}

	// A cleared registry must keep working.
	r.Insert("a", 3)
	if got, ok := r.Find("a"); !ok || got != 3 {
		t.Errorf("Find(a) after Clear = %d, %v, want 3, true", got, ok)
	}
}
