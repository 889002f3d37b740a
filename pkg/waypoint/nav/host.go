package nav

import (
	"strings"

	"github.com/waypoint-nav/waypoint/pkg/waypoint/route"
)

// Host is the minimum a navigation runtime must provide to be bound.
// Navigate receives either a route.Flat or a route.Nested request.
type Host interface {
	Navigate(req route.Request) error
	GoBack() error
}

// Optional capabilities. A host advertises one by implementing the interface.
type (
	Pusher interface {
		Push(d route.Descriptor) error
	}
	Replacer interface {
		Replace(name string, params route.Params) error
	}
	PopToTopper interface {
		PopToTop() error
	}
	ParamSetter interface {
		SetParams(params route.Params) error
	}
	BackChecker interface {
		CanGoBack() bool
	}
	Dispatcher interface {
		Dispatch(action Action) error
	}
	PathReporter interface {
		Pathname() string
	}
	Prefetcher interface {
		Prefetch(name string)
	}
)

// Action is an opaque host-defined navigation action passed through Dispatch.
type Action struct {
	Type    string
	Payload map[string]any
	Target  string // Optional navigator key the action is addressed to
}

// RouteState exposes the params of the route currently focused in the host.
type RouteState interface {
	Params() route.Params
}

// StaticState is a RouteState over a fixed params map.
type StaticState route.Params

func (s StaticState) Params() route.Params { return route.Params(s) }

// Capability is one optional host operation.
type Capability uint16

const (
	CapPush Capability = 1 << iota
	CapReplace
	CapPopToTop
	CapSetParams
	CapCanGoBack
	CapDispatch
	CapPathname
	CapPrefetch
)

// CapAll is every optional capability.
const CapAll = CapPush | CapReplace | CapPopToTop | CapSetParams | CapCanGoBack | CapDispatch | CapPathname | CapPrefetch

var capabilityNames = []struct {
	cap  Capability
	name string
}{
	{CapPush, "push"},
	{CapReplace, "replace"},
	{CapPopToTop, "popToTop"},
	{CapSetParams, "setParams"},
	{CapCanGoBack, "canGoBack"},
	{CapDispatch, "dispatch"},
	{CapPathname, "pathname"},
	{CapPrefetch, "prefetch"},
}

// Has reports whether every capability in c is present.
func (cs Capability) Has(c Capability) bool {
	return cs&c == c
}

func (cs Capability) String() string {
	if cs == 0 {
		return "none"
	}
	var names []string
	for _, cn := range capabilityNames {
		if cs.Has(cn.cap) {
			names = append(names, cn.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseCapability maps a capability name (as printed by String) back to its value.
func ParseCapability(name string) (Capability, bool) {
	for _, cn := range capabilityNames {
		if strings.EqualFold(cn.name, name) {
			return cn.cap, true
		}
	}
	return 0, false
}

// Detect inspects host once and returns the optional capabilities it implements.
func Detect(host Host) Capability {
	if r, ok := host.(restricted); ok {
		return Detect(r.Host) & r.caps
	}

	var caps Capability
	if _, ok := host.(Pusher); ok {
		caps |= CapPush
	}
	if _, ok := host.(Replacer); ok {
		caps |= CapReplace
	}
	if _, ok := host.(PopToTopper); ok {
		caps |= CapPopToTop
	}
	if _, ok := host.(ParamSetter); ok {
		caps |= CapSetParams
	}
	if _, ok := host.(BackChecker); ok {
		caps |= CapCanGoBack
	}
	if _, ok := host.(Dispatcher); ok {
		caps |= CapDispatch
	}
	if _, ok := host.(PathReporter); ok {
		caps |= CapPathname
	}
	if _, ok := host.(Prefetcher); ok {
		caps |= CapPrefetch
	}
	return caps
}

type restricted struct {
	Host
	caps Capability
}

// Restrict hides every optional capability of host outside caps. Use it to
// emulate an older runtime or to pin a test to a fixed capability set.
// The returned value still forwards calls to host, but Detect only reports
// the intersection.
func Restrict(host Host, caps Capability) Host {
	if r, ok := host.(restricted); ok {
		return restricted{Host: r.Host, caps: r.caps & caps}
	}
	return restricted{Host: host, caps: caps}
}

// unwrap returns the underlying host so capability calls reach it.
func unwrap(host Host) Host {
	if r, ok := host.(restricted); ok {
		return r.Host
	}
	return host
}
