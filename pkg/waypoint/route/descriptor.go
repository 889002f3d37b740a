// Package route defines the canonical shape of a navigation request and the
// helpers that read parameters back out of route state.
//
// A Descriptor is what callers hand to the navigation facade. Resolve turns it
// into one of the two call shapes a host navigation runtime understands:
//
//	route.Resolve(route.Descriptor{RouteName: "Profile", Params: route.Params{"id": 42}})
//	// route.Flat{Name: "Profile", Params: {"id": 42}}
//
//	route.Resolve(route.Descriptor{RouteName: "Tabs", Native: &route.Native{Screen: "Settings"}})
//	// route.Nested{Target: "Tabs", Screen: "Settings"}
package route

// Root is the conventional default destination. An empty route name is
// treated as a request to go here, never as an error.
const Root = "/"

// Params is an opaque parameter payload forwarded verbatim to the host.
type Params map[string]any

// Native carries the nested destination for targets that live inside another
// navigator. A non-empty Screen selects the Nested call shape.
type Native struct {
	Screen string         // Screen inside the navigator named by the descriptor's RouteName
	Extra  map[string]any // Target-specific fields, never read here
}

// Descriptor is the unit of navigation intent.
type Descriptor struct {
	RouteName string         // Destination; empty means Root
	Params    Params         // Forwarded verbatim
	Key       string         // Disambiguates instances of the same route in a stack
	Native    *Native        // Nested destination, if any
	Web       map[string]any // Payload for web-targeted adapters only
}

// Name returns the route name with the Root substitution applied.
func (d Descriptor) Name() string {
	if d.RouteName == "" {
		return Root
	}
	return d.RouteName
}

// IsNested reports whether the descriptor targets a screen inside a nested navigator.
func (d Descriptor) IsNested() bool {
	return d.Native != nil && d.Native.Screen != ""
}
