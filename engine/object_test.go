package engine

import (
	"testing"

	"github.com/lixenwraith/cellforge/render"
)

func TestInstantiateFromTemplate(t *testing.T) {
	f := newFixture(t)
	defer f.e.Shutdown()

	tex := f.e.CreateTexture("crate", 4, 2)
	f.e.CreateTemplate("crate", tex, 4, 2, true)

	o := f.e.Instantiate("crate", "crate-1", 10, 5, "payload")
	if o.X != 10 || o.Y != 5 || o.Width != 4 || o.Height != 2 || !o.Hitbox {
		t.Errorf("instance = %+v", o)
	}
	if o.Texture != tex {
		t.Error("instance does not share the template texture")
	}
	if o.Data != "payload" {
		t.Errorf("Data = %v, want payload", o.Data)
	}
	if got, ok := f.e.LookupObject("crate-1"); !ok || got != o {
		t.Error("instance not registered by name")
	}
}

func TestInstantiateUnknownTemplateFatal(t *testing.T) {
	f := newFixture(t)
	defer f.e.Shutdown()

	expectFatal(t, func() { f.e.Instantiate("missing", "x", 0, 0, nil) })
}

func TestFatalLookupVariants(t *testing.T) {
	f := newFixture(t)
	defer f.e.Shutdown()

	expectFatal(t, func() { f.e.Object("missing") })
	expectFatal(t, func() { f.e.ObjectByID(42) })
	expectFatal(t, func() { f.e.Texture("missing") })
	expectFatal(t, func() { f.e.Template("missing") })
	expectFatal(t, func() { f.e.Font("missing") })
	expectFatal(t, func() { f.e.PlaySound("missing") })
}

func TestLookupVariantsDoNotTerminate(t *testing.T) {
	f := newFixture(t)
	defer f.e.Shutdown()

	if _, ok := f.e.LookupObject("missing"); ok {
		t.Error("LookupObject found a ghost")
	}
	if _, ok := f.e.LookupObjectByID(42); ok {
		t.Error("LookupObjectByID found a ghost")
	}
	if _, ok := f.e.LookupTexture("missing"); ok {
		t.Error("LookupTexture found a ghost")
	}
	if _, ok := f.e.LookupTemplate("missing"); ok {
		t.Error("LookupTemplate found a ghost")
	}
	if _, ok := f.e.LookupFont("missing"); ok {
		t.Error("LookupFont found a ghost")
	}
	if _, ok := f.e.LookupSound("missing"); ok {
		t.Error("LookupSound found a ghost")
	}
	if f.e.ObjectExists("missing") {
		t.Error("ObjectExists found a ghost")
	}
}

func TestTileOutOfBoundsFatal(t *testing.T) {
	f := newFixture(t)
	defer f.e.Shutdown()

	f.e.RegisterTexture("atlas", render.NewTexture("atlas", 8, 8))
	m := f.e.Tilemap("atlas", 2, 2, 0, 4, 4)

	expectFatal(t, func() { f.e.Tile(m, 4, 0) })
	f.e.Tile(m, 3, 3) // last valid tile
}

func TestCollidingAndHover(t *testing.T) {
	f := newFixture(t)
	defer f.e.Shutdown()

	a := f.e.CreateObject("a", nil, 0, 0, 10, 10, true, nil)
	b := f.e.CreateObject("b", nil, 9, 9, 10, 10, true, nil)
	c := f.e.CreateHitbox(10, 0, 10, 10)

	if !f.e.Colliding(a, b) {
		t.Error("overlapping objects not colliding")
	}
	if f.e.Colliding(a, c) {
		t.Error("edge-touching hitbox reported as colliding")
	}

	// Mouse starts at the origin, which lies on a's inclusive edge.
	if !f.e.Hovered(a) {
		t.Error("object at origin not hovered by default mouse position")
	}
	if f.e.Hovered(c) {
		t.Error("distant hitbox hovered")
	}
	if !f.e.HoveredByID(a.ID) {
		t.Error("HoveredByID false for hovered object")
	}
	if f.e.HoveredByID(999) {
		t.Error("HoveredByID true for missing id, want silent false")
	}
}

func TestObjectsAt(t *testing.T) {
	f := newFixture(t)
	defer f.e.Shutdown()

	first := f.e.CreateObject("pad", nil, 0, 0, 10, 10, true, nil)
	second := f.e.CreateObject("pad", nil, 5, 5, 10, 10, true, nil)
	f.e.CreateObject("far", nil, 30, 0, 2, 2, true, nil)

	hits := f.e.ObjectsAt(7, 7)
	if len(hits) != 2 || hits[0] != first || hits[1] != second {
		t.Errorf("ObjectsAt(7, 7) = %d hits, want both pads in order", len(hits))
	}
	if hits := f.e.ObjectsAt(25, 25); len(hits) != 0 {
		t.Errorf("ObjectsAt empty point = %d hits", len(hits))
	}
}

func TestDrawObject(t *testing.T) {
	f := newFixture(t)
	defer f.e.Shutdown()

	tex := f.e.CreateTexture("dot", 1, 1)
	tex.Set(0, 0, render.Cell{Rune: '*'})
	o := f.e.CreateObject("dot", tex, 3, 4, 2, 2, false, nil)

	f.e.DrawObject(o)
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			if f.buf.At(3+dx, 4+dy).Rune != '*' {
				t.Fatalf("object cell (%d, %d) not drawn", 3+dx, 4+dy)
			}
		}
	}

	// Textureless objects draw nothing.
	bare := f.e.CreateObject("bare", nil, 0, 0, 2, 2, false, nil)
	f.e.DrawObject(bare)
	if f.buf.At(0, 0).Rune != 0 {
		t.Error("textureless object drew cells")
	}
}

func TestRemovalThroughEngine(t *testing.T) {
	f := newFixture(t)
	defer f.e.Shutdown()

	a := f.e.CreateObject("enemy", nil, 0, 0, 1, 1, false, nil)
	f.e.CreateObject("enemy", nil, 1, 1, 1, 1, false, nil)
	f.e.CreateObject("player", nil, 2, 2, 1, 1, false, nil)

	f.e.RemoveObjectByID(a.ID)
	if !f.e.ObjectExists("enemy") {
		t.Error("RemoveObjectByID removed the duplicate too")
	}
	f.e.RemoveObjectsByName("enemy")
	if f.e.ObjectExists("enemy") {
		t.Error("RemoveObjectsByName left a match behind")
	}

	f.e.ClearObjects()
	if f.e.ObjectExists("player") {
		t.Error("ClearObjects left objects behind")
	}
	// Ids survive a clear.
	if o := f.e.CreateObject("x", nil, 0, 0, 1, 1, false, nil); o.ID != 3 {
		t.Errorf("id after clear = %d, want 3", o.ID)
	}
}
