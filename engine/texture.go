package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/cellforge/asset"
	"github.com/lixenwraith/cellforge/render"
)

// LoadTexture decodes the image at path and registers it under name.
// Load failure is fatal; use asset.LoadImage directly to handle errors.
func (e *Engine) LoadTexture(name, path string) *render.Texture {
	e.assertAlive()
	tex, err := asset.LoadImage(path)
	if err != nil {
		e.fatal("failed to load texture", zap.String("name", name), zap.Error(err))
	}
	tex.Name = name
	e.textures.Insert(name, tex)
	return tex
}

// CreateTexture registers a blank texture for programmatic drawing.
func (e *Engine) CreateTexture(name string, width, height int) *render.Texture {
	e.assertAlive()
	tex := render.NewTexture(name, width, height)
	e.textures.Insert(name, tex)
	return tex
}

// RegisterTexture adds an externally built texture to the registry.
func (e *Engine) RegisterTexture(name string, tex *render.Texture) {
	e.assertAlive()
	e.textures.Insert(name, tex)
}

// Texture returns the first registered texture with the given name.
// A miss is fatal.
func (e *Engine) Texture(name string) *render.Texture {
	e.assertAlive()
	tex, ok := e.textures.Find(name)
	if !ok {
		e.fatal("texture lookup failed", zap.Error(&NotFoundError{Kind: "texture", Name: name}))
	}
	return tex
}

// LookupTexture is the non-terminating variant of Texture.
func (e *Engine) LookupTexture(name string) (*render.Texture, bool) {
	e.assertAlive()
	return e.textures.Find(name)
}

// RemoveTexture removes the first texture registered under name.
// Objects and templates holding the texture keep their pointer.
func (e *Engine) RemoveTexture(name string) {
	e.assertAlive()
	e.textures.RemoveFirst(name)
}

// ClearTextures removes every registered texture.
func (e *Engine) ClearTextures() {
	e.assertAlive()
	e.textures.Clear()
}

// DrawTextureFromPath loads, draws and discards a texture in one call.
// The decode runs every call; register the texture instead for anything
// drawn per frame. Load failure is fatal.
func (e *Engine) DrawTextureFromPath(path string, x, y, width, height int) {
	e.assertAlive()
	tex, err := asset.LoadImage(path)
	if err != nil {
		e.fatal("failed to load texture", zap.String("path", path), zap.Error(err))
	}
	e.DrawTexture(tex, x, y, width, height)
}

// DrawTexture blits a texture scaled into the given rect on the render
// surface.
func (e *Engine) DrawTexture(tex *render.Texture, x, y, width, height int) {
	e.assertAlive()
	render.CopyRegion(e.renderer, tex, render.Rect{}, render.Rect{X: x, Y: y, W: width, H: height})
}
