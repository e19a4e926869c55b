package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/cellforge/registry"
	"github.com/lixenwraith/cellforge/render"
)

// CreateTemplate registers a reusable object blueprint.
func (e *Engine) CreateTemplate(name string, tex *render.Texture, width, height int, hitbox bool) *registry.Template {
	e.assertAlive()
	return e.templates.Create(name, tex, width, height, hitbox)
}

// Template returns the earliest registered template with the given
// name. A miss is fatal.
func (e *Engine) Template(name string) *registry.Template {
	e.assertAlive()
	tpl, ok := e.templates.ByName(name)
	if !ok {
		e.fatal("template lookup failed", zap.Error(&NotFoundError{Kind: "template", Name: name}))
	}
	return tpl
}

// LookupTemplate is the non-terminating variant of Template.
func (e *Engine) LookupTemplate(name string) (*registry.Template, bool) {
	e.assertAlive()
	return e.templates.ByName(name)
}

// RemoveTemplate removes the earliest template with the given name.
// Objects already instantiated from it are unaffected.
func (e *Engine) RemoveTemplate(name string) {
	e.assertAlive()
	e.templates.Remove(name)
}

// ClearTemplates removes every template.
func (e *Engine) ClearTemplates() {
	e.assertAlive()
	e.templates.Clear()
}
