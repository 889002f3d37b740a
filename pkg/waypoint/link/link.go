// Package link provides the declarative navigation trigger: a pressable
// element built from a route descriptor that navigates when activated.
//
// A Link is a per-instance value kept across renders. Each Render returns a
// Pressable whose OnPress handler keeps its identity until the facade, the
// route name or the params change.
//
//	profile := link.New[struct{}]()
//	el := profile.Render(scope.Facade(), link.Props[struct{}]{
//	    RouteName: "Profile",
//	    Params:    route.Params{"id": 42},
//	    Children:  link.Label("Open profile"),
//	})
//	el.OnPress.Press()
package link

import (
	"maps"
	"reflect"

	"github.com/waypoint-nav/waypoint/pkg/waypoint/nav"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/route"
	"go.uber.org/atomic"
)

// Role is the accessibility role given to a link's Text node.
const Role = "link"

// Props describes one link. Extra carries host-specific fields the link
// never inspects.
type Props[Extra any] struct {
	RouteName string
	Params    route.Params
	Key       string
	Native    *route.Native
	Web       map[string]any

	Children  Node           // Required
	Pressable PressableProps // Passed through to the pressable primitive
	Style     *TextStyle     // Style of the Text node
	NotText   bool           // Render Children as-is instead of wrapping them in Text
	Ref       *TextRef       // Receives the rendered Text node

	Extra Extra
}

// Descriptor returns the route descriptor the props describe.
func (p Props[Extra]) Descriptor() route.Descriptor {
	return route.Descriptor{
		RouteName: p.RouteName,
		Params:    p.Params,
		Key:       p.Key,
		Native:    p.Native,
		Web:       p.Web,
	}
}

// Handler is a link's activation callback. Compare handlers by pointer to
// detect identity changes between renders.
type Handler struct {
	facade    *nav.Facade
	routeName string
	params    route.Params
	native    func() *route.Native
	presses   atomic.Int64
}

// Press navigates once. Every call dispatches; there is no queueing or
// de-duplication. The host's error, if any, is returned unchanged.
func (h *Handler) Press() error {
	h.presses.Inc()

	name := h.routeName
	if name == "" {
		name = route.Root
	}

	return h.facade.Navigate(route.Descriptor{
		RouteName: name,
		Params:    h.params,
		Native:    h.native(),
	})
}

// Presses returns how many times Press has been called.
func (h *Handler) Presses() int64 {
	return h.presses.Load()
}

// Link is one trigger instance. The zero value is not usable; use New.
type Link[Extra any] struct {
	handler *Handler
	facade  *nav.Facade
	name    string
	params  route.Params // snapshot of the params the handler was built from
	native  *route.Native
}

// New returns a link instance with no render yet.
func New[Extra any]() *Link[Extra] {
	return &Link[Extra]{}
}

// Render produces the element tree for props. The facade is read from the
// ambient scope by the caller and passed in explicitly.
func (l *Link[Extra]) Render(f *nav.Facade, props Props[Extra]) *Pressable {
	l.native = props.Native

	if l.handler == nil || l.facade != f || l.name != props.RouteName || !sameParams(l.params, props.Params) {
		l.facade = f
		l.name = props.RouteName
		l.params = maps.Clone(props.Params)
		l.handler = &Handler{
			facade:    f,
			routeName: props.RouteName,
			params:    props.Params,
			native:    func() *route.Native { return l.native },
		}
	}

	el := &Pressable{
		Props:   props.Pressable,
		OnPress: l.handler,
	}

	if props.NotText {
		el.Child = props.Children
		if props.Ref != nil {
			props.Ref.Current = nil
		}
		return el
	}

	text := &Text{
		Style:    props.Style,
		Role:     Role,
		Children: props.Children,
	}
	if props.Ref != nil {
		props.Ref.Current = text
	}
	el.Child = text
	return el
}

// Handler returns the current activation handler, or nil before the first render.
func (l *Link[Extra]) Handler() *Handler {
	return l.handler
}

func sameParams(a, b route.Params) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return reflect.DeepEqual(a, b)
}
