package render

import "github.com/lixenwraith/galaxy-gallery/canvas"

// SystemRenderer is implemented by anything with visual output on the canvas
type SystemRenderer interface {
	Render(ctx RenderContext, cv *canvas.Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// RendererFunc adapts a plain function to SystemRenderer
type RendererFunc func(ctx RenderContext, cv *canvas.Canvas)

func (f RendererFunc) Render(ctx RenderContext, cv *canvas.Canvas) {
	f(ctx, cv)
}
