package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/cellforge/physics"
	"github.com/lixenwraith/cellforge/registry"
	"github.com/lixenwraith/cellforge/render"
)

// CreateObject registers a new object with a fresh id. Names need not
// be unique; lookups resolve to the earliest surviving match.
func (e *Engine) CreateObject(name string, tex *render.Texture, x, y, width, height int, hitbox bool, data any) *registry.Object {
	e.assertAlive()
	return e.objects.Create(name, tex, x, y, width, height, hitbox, data)
}

// CreateHitbox builds a standalone collision box for geometry queries.
// It is not registered and has no id.
func (e *Engine) CreateHitbox(x, y, width, height int) *registry.Object {
	e.assertAlive()
	return registry.NewHitbox(x, y, width, height)
}

// Instantiate creates an object from the named template at (x, y). An
// unknown template is fatal.
func (e *Engine) Instantiate(templateName, name string, x, y int, data any) *registry.Object {
	e.assertAlive()
	tpl, ok := e.templates.ByName(templateName)
	if !ok {
		e.fatal("instantiate failed", zap.Error(&NotFoundError{Kind: "template", Name: templateName}))
	}
	return e.objects.Instantiate(tpl, name, x, y, data)
}

// Object returns the earliest registered object with the given name.
// A miss is fatal.
func (e *Engine) Object(name string) *registry.Object {
	e.assertAlive()
	o, ok := e.objects.ByName(name)
	if !ok {
		e.fatal("object lookup failed", zap.Error(&NotFoundError{Kind: "object", Name: name}))
	}
	return o
}

// LookupObject is the non-terminating variant of Object.
func (e *Engine) LookupObject(name string) (*registry.Object, bool) {
	e.assertAlive()
	return e.objects.ByName(name)
}

// ObjectByID returns the object with the given id. A miss is fatal.
func (e *Engine) ObjectByID(id int) *registry.Object {
	e.assertAlive()
	o, ok := e.objects.ByID(id)
	if !ok {
		e.fatal("object lookup failed", zap.Error(&NotFoundError{Kind: "object", ID: id}))
	}
	return o
}

// LookupObjectByID is the non-terminating variant of ObjectByID.
func (e *Engine) LookupObjectByID(id int) (*registry.Object, bool) {
	e.assertAlive()
	return e.objects.ByID(id)
}

// ObjectExists reports whether any object carries the given name.
func (e *Engine) ObjectExists(name string) bool {
	e.assertAlive()
	return e.objects.Exists(name)
}

// RemoveObjectByID removes at most one object; absent ids are a no-op.
func (e *Engine) RemoveObjectByID(id int) {
	e.assertAlive()
	e.objects.RemoveByID(id)
}

// RemoveObjectsByName removes every object with the given name.
func (e *Engine) RemoveObjectsByName(name string) {
	e.assertAlive()
	e.objects.RemoveByName(name)
}

// ClearObjects removes every object. Ids keep counting up; Clear never
// resets them.
func (e *Engine) ClearObjects() {
	e.assertAlive()
	e.objects.Clear()
}

// Colliding reports whether the bounding boxes of two objects overlap.
// Edge contact is not a collision.
func (e *Engine) Colliding(a, b *registry.Object) bool {
	e.assertAlive()
	return physics.Colliding(a, b)
}

// Hovered reports whether the last known mouse position lies on the
// object, edges inclusive.
func (e *Engine) Hovered(o *registry.Object) bool {
	e.assertAlive()
	return physics.Contains(physics.BoxOf(o), e.mouseX, e.mouseY)
}

// HoveredByID reports whether the object with the given id is hovered.
// A missing id is false, not fatal.
func (e *Engine) HoveredByID(id int) bool {
	e.assertAlive()
	o, ok := e.objects.ByID(id)
	return ok && e.Hovered(o)
}

// ObjectsAt returns every object whose box contains (x, y), edges
// inclusive, in insertion order.
func (e *Engine) ObjectsAt(x, y int) []*registry.Object {
	e.assertAlive()
	var hits []*registry.Object
	e.objects.Each(func(o *registry.Object) {
		if physics.Contains(physics.BoxOf(o), x, y) {
			hits = append(hits, o)
		}
	})
	return hits
}

// DrawObject blits the object's texture into its rect. Objects without
// a texture draw nothing.
func (e *Engine) DrawObject(o *registry.Object) {
	e.assertAlive()
	if o == nil || o.Texture == nil {
		return
	}
	render.CopyRegion(e.renderer, o.Texture, render.Rect{}, render.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
}

// DrawObjects draws every registered object in insertion order.
func (e *Engine) DrawObjects() {
	e.assertAlive()
	e.objects.Each(e.DrawObject)
}
