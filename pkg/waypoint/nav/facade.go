// Package nav presents one stable navigation operation set over whatever
// host runtime is bound to it.
//
// Hosts implement Host and any of the optional capability interfaces
// (Pusher, Replacer, PopToTopper, ...). Bind detects the capabilities once;
// the Facade then degrades where an operation can be approximated (Push falls
// back to Navigate, Prefetch is a no-op) and fails fast with a
// *CapabilityError where it cannot (Replace).
//
//	f := nav.Bind(host, state)
//	if err := f.Navigate(route.Descriptor{RouteName: "Profile", Params: route.Params{"id": 42}}); err != nil {
//	    // rejected by the host
//	}
//	id := nav.Param(f, "id", 0)
package nav

import (
	"log/slog"

	"github.com/waypoint-nav/waypoint/pkg/waypoint/internal"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/route"
)

// capabilitySet maps each optional operation to its implementation, or nil
// when the host does not provide it.
type capabilitySet struct {
	push      func(route.Descriptor) error
	replace   func(string, route.Params) error
	popToTop  func() error
	setParams func(route.Params) error
	canGoBack func() bool
	dispatch  func(Action) error
	pathname  func() string
	prefetch  func(string)
}

func resolveCapabilities(host Host, caps Capability) capabilitySet {
	h := unwrap(host)

	var set capabilitySet
	if caps.Has(CapPush) {
		set.push = h.(Pusher).Push
	}
	if caps.Has(CapReplace) {
		set.replace = h.(Replacer).Replace
	}
	if caps.Has(CapPopToTop) {
		set.popToTop = h.(PopToTopper).PopToTop
	}
	if caps.Has(CapSetParams) {
		set.setParams = h.(ParamSetter).SetParams
	}
	if caps.Has(CapCanGoBack) {
		set.canGoBack = h.(BackChecker).CanGoBack
	}
	if caps.Has(CapDispatch) {
		set.dispatch = h.(Dispatcher).Dispatch
	}
	if caps.Has(CapPathname) {
		set.pathname = h.(PathReporter).Pathname
	}
	if caps.Has(CapPrefetch) {
		set.prefetch = h.(Prefetcher).Prefetch
	}
	return set
}

// Facade is the normalized operation set over one bound host. It holds no
// mutable state; every call is a synchronous forward.
type Facade struct {
	host   Host
	state  RouteState
	caps   Capability
	set    capabilitySet
	logger *slog.Logger
}

// Option configures Bind.
type Option func(*Facade)

// WithLogger routes dispatch tracing to logger instead of the package logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Facade) {
		f.logger = logger
	}
}

// WithCapabilities limits the optional capabilities the facade will use to caps.
func WithCapabilities(caps Capability) Option {
	return func(f *Facade) {
		f.caps &= caps
	}
}

// Bind resolves host's capabilities and returns a facade over it. state may
// be nil, in which case every parameter lookup misses.
func Bind(host Host, state RouteState, opts ...Option) *Facade {
	f := &Facade{
		host:  host,
		state: state,
		caps:  Detect(host),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = internal.GetNavLogger()
	}
	f.set = resolveCapabilities(host, f.caps)
	return f
}

// Capabilities returns the optional capabilities resolved at bind time.
func (f *Facade) Capabilities() Capability {
	return f.caps
}

// Has reports whether the bound host provides c.
func (f *Facade) Has(c Capability) bool {
	return f.caps.Has(c)
}

// Navigate sends exactly one transition request to the host. The call shape
// is chosen from the descriptor: Nested when Native.Screen is set, Flat
// otherwise. Errors from the host are returned unchanged.
func (f *Facade) Navigate(d route.Descriptor) error {
	req := route.Resolve(d)

	switch r := req.(type) {
	case route.Nested:
		f.logger.Debug("navigate", "shape", "nested", "route", r.Target, "screen", r.Screen, "key", r.Key)
	case route.Flat:
		f.logger.Debug("navigate", "shape", "flat", "route", r.Name, "key", r.Key)
	}

	return f.host.Navigate(req)
}

// Push forwards d to the host's push primitive, or navigates when the host
// has none.
func (f *Facade) Push(d route.Descriptor) error {
	if f.set.push == nil {
		f.logger.Debug("push unavailable, navigating instead", "route", d.Name())
		return f.Navigate(d)
	}
	f.logger.Debug("push", "route", d.Name(), "key", d.Key)
	return f.set.push(d)
}

// Replace forwards the route name (root when empty) and params to the host's
// replace primitive. Without one it returns a *CapabilityError and
// dispatches nothing.
func (f *Facade) Replace(d route.Descriptor) error {
	if f.set.replace == nil {
		return newCapabilityError("replace", CapReplace)
	}
	f.logger.Debug("replace", "route", d.Name())
	return f.set.replace(d.Name(), d.Params)
}

// GoBack forwards to the host. Whether there is anywhere to go back to is
// the host's concern.
func (f *Facade) GoBack() error {
	f.logger.Debug("goBack")
	return f.host.GoBack()
}

// Prefetch is an advisory warm-up hint. It is a no-op unless the host
// implements Prefetcher, and never fails.
func (f *Facade) Prefetch(name string) {
	if f.set.prefetch != nil {
		f.set.prefetch(name)
	}
}

// Params returns the current route state's params, read fresh on each call.
func (f *Facade) Params() route.Params {
	if f.state == nil {
		return nil
	}
	return f.state.Params()
}

// GetParam looks up a dotted path in the current route params. When the path
// is absent it returns the first fallback, or nil.
func (f *Facade) GetParam(name string, fallback ...any) any {
	if v, ok := route.Lookup(f.Params(), name); ok {
		return v
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return nil
}

// Param is the typed form of GetParam. See route.Get for conversion rules.
func Param[T any](f *Facade, name string, fallback T) T {
	return route.Get(f.Params(), name, fallback)
}

func (f *Facade) PopToTop() error {
	if f.set.popToTop == nil {
		return newCapabilityError("popToTop", CapPopToTop)
	}
	return f.set.popToTop()
}

func (f *Facade) SetParams(params route.Params) error {
	if f.set.setParams == nil {
		return newCapabilityError("setParams", CapSetParams)
	}
	return f.set.setParams(params)
}

func (f *Facade) Dispatch(action Action) error {
	if f.set.dispatch == nil {
		return newCapabilityError("dispatch", CapDispatch)
	}
	return f.set.dispatch(action)
}

// CanGoBack reports the host's answer and whether the host could answer at all.
func (f *Facade) CanGoBack() (can bool, ok bool) {
	if f.set.canGoBack == nil {
		return false, false
	}
	return f.set.canGoBack(), true
}

// Pathname reports the host's current path, if the host exposes one.
func (f *Facade) Pathname() (string, bool) {
	if f.set.pathname == nil {
		return "", false
	}
	return f.set.pathname(), true
}
