// Package dnd moves Item values from drag sources to drop targets. The
// dragged Item is the payload of the drop itself; there is no shared
// "currently dragged" state.
package dnd

import (
	"sync"

	"fyne.io/fyne/v2"

	"ticks/internal/core/model"
)

// DropTarget receives items dropped over its region.
type DropTarget interface {
	OnItemDropped(item model.Item, position fyne.Position)
}

// DropTargetFunc adapts a function to DropTarget.
type DropTargetFunc func(item model.Item, position fyne.Position)

// OnItemDropped calls fn.
func (fn DropTargetFunc) OnItemDropped(item model.Item, position fyne.Position) {
	fn(item, position)
}

// Region reports the absolute position and size of a target area.
type Region func() (fyne.Position, fyne.Size)

// ObjectRegion returns the on-screen area of object. Objects that are not
// visible report an empty area.
func ObjectRegion(object fyne.CanvasObject) Region {
	return func() (fyne.Position, fyne.Size) {
		if !object.Visible() {
			return fyne.Position{}, fyne.Size{}
		}
		app := fyne.CurrentApp()
		if app == nil {
			return fyne.Position{}, fyne.Size{}
		}
		return app.Driver().AbsolutePositionForObject(object), object.Size()
	}
}

type route struct {
	region Region
	target DropTarget
}

// Router dispatches drops to registered targets.
type Router struct {
	mu     sync.Mutex
	routes []route
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{}
}

// Register adds a target. Earlier registrations win when regions overlap.
func (router *Router) Register(region Region, target DropTarget) {
	router.mu.Lock()
	router.routes = append(router.routes, route{region: region, target: target})
	router.mu.Unlock()
}

// Drop delivers item to the first target containing absolute. The target
// receives the position relative to its region. It reports whether a
// target accepted the drop.
func (router *Router) Drop(item model.Item, absolute fyne.Position) bool {
	router.mu.Lock()
	routes := append([]route(nil), router.routes...)
	router.mu.Unlock()

	for _, candidate := range routes {
		origin, size := candidate.region()
		if !contains(origin, size, absolute) {
			continue
		}
		candidate.target.OnItemDropped(item, absolute.Subtract(origin))
		return true
	}
	return false
}

func contains(origin fyne.Position, size fyne.Size, point fyne.Position) bool {
	return point.X >= origin.X && point.Y >= origin.Y &&
		point.X < origin.X+size.Width && point.Y < origin.Y+size.Height
}
