package registry

import "github.com/lixenwraith/cellforge/render"

// Object is a renderable entity. Data is an opaque caller-supplied
// payload; the registry never inspects or releases it.
type Object struct {
	ID      int
	Name    string
	Texture *render.Texture
	X, Y    int
	Width   int
	Height  int
	Hitbox  bool
	Data    any
}

// NewHitbox builds a standalone collision box. It is not registered
// anywhere and carries no id, name, texture or payload; it exists only
// for geometry queries.
func NewHitbox(x, y, width, height int) *Object {
	return &Object{X: x, Y: y, Width: width, Height: height, Hitbox: true}
}

// ObjectRegistry tracks Objects by insertion order, name, and numeric
// id. Ids are assigned at creation, strictly increasing from 0, and
// are never reused, even after removal or Clear.
type ObjectRegistry struct {
	reg    *Registry[*Object]
	byID   map[int]*Object
	nextID int
}

// NewObjectRegistry creates an empty object registry.
func NewObjectRegistry() *ObjectRegistry {
	return &ObjectRegistry{
		reg:  New[*Object](nil),
		byID: make(map[int]*Object),
	}
}

// Create allocates a new Object with a fresh id, appends it, and
// returns it. Names need not be unique.
func (r *ObjectRegistry) Create(name string, tex *render.Texture, x, y, width, height int, hitbox bool, data any) *Object {
	o := &Object{
		ID:      r.nextID,
		Name:    name,
		Texture: tex,
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Hitbox:  hitbox,
		Data:    data,
	}
	r.nextID++
	r.reg.Insert(name, o)
	r.byID[o.ID] = o
	return o
}

// Instantiate creates a new Object from tpl at the given position. The
// template is only read; repeated instantiation yields independent
// objects with fresh ids.
func (r *ObjectRegistry) Instantiate(tpl *Template, name string, x, y int, data any) *Object {
	return r.Create(name, tpl.Texture, x, y, tpl.Width, tpl.Height, tpl.Hitbox, data)
}

// ByID returns the object with the given id.
func (r *ObjectRegistry) ByID(id int) (*Object, bool) {
	o, ok := r.byID[id]
	return o, ok
}

// ByName returns the earliest inserted object with the given name.
func (r *ObjectRegistry) ByName(name string) (*Object, bool) {
	return r.reg.Find(name)
}

// Exists reports whether any object carries the given name.
func (r *ObjectRegistry) Exists(name string) bool {
	return r.reg.Has(name)
}

// RemoveByID removes at most one object. Absent ids are a no-op.
func (r *ObjectRegistry) RemoveByID(id int) {
	o, ok := r.byID[id]
	if !ok {
		return
	}
	delete(r.byID, id)
	r.reg.RemoveItem(o)
}

// RemoveByName removes every object carrying the given name. The
// asymmetry with RemoveByID is deliberate: ids are unique, names are
// not.
func (r *ObjectRegistry) RemoveByName(name string) {
	for _, o := range r.reg.All(name) {
		delete(r.byID, o.ID)
	}
	r.reg.RemoveAll(name)
}

// Clear removes every object. The id counter is not reset; ids stay
// monotonic across the registry's entire lifetime.
func (r *ObjectRegistry) Clear() {
	r.reg.Clear()
	r.byID = make(map[int]*Object)
}

// Len returns the number of registered objects.
func (r *ObjectRegistry) Len() int {
	return r.reg.Len()
}

// Each visits every object in insertion order.
func (r *ObjectRegistry) Each(fn func(*Object)) {
	r.reg.Each(func(_ string, o *Object) { fn(o) })
}
