package registry

import "github.com/lixenwraith/cellforge/render"

// Template is a reusable blueprint for creating Objects: the visual
// and geometric defaults an instance starts from.
type Template struct {
	Name    string
	Texture *render.Texture
	Width   int
	Height  int
	Hitbox  bool
}

// TemplateRegistry holds named object templates.
type TemplateRegistry struct {
	reg *Registry[*Template]
}

// NewTemplateRegistry creates an empty template registry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{reg: New[*Template](nil)}
}

// Create stores a named blueprint and returns it.
func (r *TemplateRegistry) Create(name string, tex *render.Texture, width, height int, hitbox bool) *Template {
	tpl := &Template{
		Name:    name,
		Texture: tex,
		Width:   width,
		Height:  height,
		Hitbox:  hitbox,
	}
	r.reg.Insert(name, tpl)
	return tpl
}

// ByName returns the earliest inserted template with the given name.
func (r *TemplateRegistry) ByName(name string) (*Template, bool) {
	return r.reg.Find(name)
}

// Remove removes the earliest template with the given name. Absent
// names are a no-op.
func (r *TemplateRegistry) Remove(name string) {
	r.reg.RemoveFirst(name)
}

// Clear removes every template.
func (r *TemplateRegistry) Clear() {
	r.reg.Clear()
}

// Len returns the number of templates.
func (r *TemplateRegistry) Len() int {
	return r.reg.Len()
}
