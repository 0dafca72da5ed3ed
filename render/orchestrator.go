package render

import "github.com/lixenwraith/galaxy-gallery/canvas"

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator runs registered renderers against a canvas in priority order
type RenderOrchestrator struct {
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an empty pipeline
func NewRenderOrchestrator() *RenderOrchestrator {
	return &RenderOrchestrator{
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Len returns the number of registered renderers
func (o *RenderOrchestrator) Len() int {
	return len(o.renderers)
}

// RenderFrame executes every visible renderer in order
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext, cv *canvas.Canvas) {
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, cv)
	}
}
