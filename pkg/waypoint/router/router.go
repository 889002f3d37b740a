package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/waypoint-nav/waypoint/pkg/waypoint/internal"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/nav"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/route"
)

// Frame is what a screen receives each time it runs.
type Frame struct {
	Entry Entry       // The focused route instance
	Path  string      // Pathname of the focused route, e.g. "/Tabs/Settings"
	Nav   *nav.Facade // Facade bound to this router, stable across frames
}

// ScreenFunc runs a screen until the user does something that navigates.
// Return ErrExit to stop Run. Returning nil runs whatever route is focused
// afterwards, which may be the same one.
type ScreenFunc func(ctx context.Context, frame Frame) error

// Capability profiles emulating the host runtimes the facade has to cope with.
const (
	ProfileLegacy = nav.Capability(0) // navigate and goBack only
	ProfileStack  = nav.CapPush | nav.CapReplace | nav.CapPopToTop | nav.CapSetParams | nav.CapCanGoBack | nav.CapDispatch
	ProfileFull   = nav.CapPush | nav.CapReplace | nav.CapPopToTop | nav.CapSetParams | nav.CapCanGoBack | nav.CapDispatch | nav.CapPathname
)

// ParseProfile maps a profile name from configuration onto its capability set.
func ParseProfile(name string) (nav.Capability, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "legacy":
		return ProfileLegacy, nil
	case "stack":
		return ProfileStack, nil
	case "", "full":
		return ProfileFull, nil
	default:
		return 0, fmt.Errorf("router: unknown profile %q", name)
	}
}

// Router is an in-memory host navigation runtime: a stack of named routes
// where any route may itself be a nested navigator. It satisfies nav.Host,
// every optional capability except Prefetcher, and nav.RouteState.
//
// A Router is not safe for concurrent use; drive it from the UI loop.
type Router struct {
	name     string
	initial  string
	screens  map[string]ScreenFunc
	children map[string]*Router
	stack    *Stack
	profile  nav.Capability
	logger   *slog.Logger
}

// New creates a new Router advertising ProfileFull.
func New() *Router {
	return &Router{
		screens:  make(map[string]ScreenFunc),
		children: make(map[string]*Router),
		stack:    NewStack(),
		profile:  ProfileFull,
	}
}

// Register adds a screen. The first route registered becomes the initial route.
func (r *Router) Register(name string, fn ScreenFunc) *Router {
	r.screens[name] = fn
	if r.initial == "" {
		r.initial = name
	}
	return r
}

// RegisterNavigator adds child as a nested navigator reachable as name.
func (r *Router) RegisterNavigator(name string, child *Router) *Router {
	child.name = name
	r.children[name] = child
	if r.initial == "" {
		r.initial = name
	}
	return r
}

// SetInitial sets the route opened for route.Root and for a freshly opened navigator.
func (r *Router) SetInitial(name string) *Router {
	r.initial = name
	return r
}

// SetProfile limits the capabilities Host advertises.
func (r *Router) SetProfile(profile nav.Capability) *Router {
	r.profile = profile
	return r
}

// Host returns the router as a nav.Host advertising only its profile.
func (r *Router) Host() nav.Host {
	return nav.Restrict(r, r.profile)
}

// Stack returns this navigator's own stack.
func (r *Router) Stack() *Stack {
	return r.stack
}

func (r *Router) log() *slog.Logger {
	if r.logger == nil {
		r.logger = internal.GetNavLogger().With("navigator", r.displayName())
	}
	return r.logger
}

func (r *Router) displayName() string {
	if r.name == "" {
		return "root"
	}
	return r.name
}

func (r *Router) knows(name string) bool {
	_, screen := r.screens[name]
	_, child := r.children[name]
	return screen || child
}

// resolves reports whether name is a route of r or of any navigator below it.
func (r *Router) resolves(name string) bool {
	if r.knows(name) {
		return true
	}
	for _, child := range r.children {
		if child.resolves(name) {
			return true
		}
	}
	return false
}

func (r *Router) rootAlias(name string) string {
	if name == route.Root {
		return r.initial
	}
	return name
}

// focusedChild returns the navigator of the top entry, if it is one.
func (r *Router) focusedChild() *Router {
	if top := r.stack.Peek(); top != nil {
		return top.Child
	}
	return nil
}

// Navigate accepts both call shapes. A flat request for a route already on
// the stack pops back to it; otherwise the route is pushed. Names not known
// to this navigator are looked up in nested navigators, focused one first.
func (r *Router) Navigate(req route.Request) error {
	switch req := req.(type) {
	case route.Flat:
		return r.navigate(r.rootAlias(req.Name), req.Params, req.Key)
	case route.Nested:
		return r.navigateNested(req)
	default:
		return fmt.Errorf("router: unsupported request %T", req)
	}
}

func (r *Router) navigate(name string, params route.Params, key string) error {
	if r.knows(name) {
		r.open(name, params, key)
		return nil
	}

	if child := r.focusedChild(); child != nil && child.resolves(name) {
		return child.navigate(name, params, key)
	}

	for _, childName := range slices.Sorted(maps.Keys(r.children)) {
		if child := r.children[childName]; child.resolves(name) {
			r.open(childName, nil, "")
			return child.navigate(name, params, key)
		}
	}

	return &UnknownRouteError{Name: name}
}

func (r *Router) navigateNested(req route.Nested) error {
	target := r.rootAlias(req.Target)

	if child, ok := r.children[target]; ok {
		if !child.resolves(req.Screen) {
			return &UnknownRouteError{Name: req.Screen}
		}
		r.open(target, nil, "")
		return child.navigate(req.Screen, req.Params, req.Key)
	}

	if r.knows(target) {
		return &NotNavigatorError{Name: target}
	}

	if child := r.focusedChild(); child != nil && child.resolves(target) {
		return child.navigateNested(req)
	}

	for _, childName := range slices.Sorted(maps.Keys(r.children)) {
		if child := r.children[childName]; child.resolves(target) {
			r.open(childName, nil, "")
			return child.navigateNested(req)
		}
	}

	return &UnknownRouteError{Name: target}
}

func (r *Router) open(name string, params route.Params, key string) {
	if i := r.stack.IndexOf(name, key); i >= 0 {
		r.stack.Truncate(i + 1)
		if params != nil {
			r.stack.At(i).Params = params
		}
		r.log().Debug("router: focus", "route", name, "depth", i+1)
		return
	}
	r.stack.Push(r.entry(name, params, key))
	r.log().Debug("router: push", "route", name, "depth", r.stack.Len())
}

// entry builds a stack entry, opening a nested navigator's initial route
// when it has nothing on its stack yet.
func (r *Router) entry(name string, params route.Params, key string) Entry {
	e := Entry{Name: name, Key: key, Params: params}
	if child, ok := r.children[name]; ok {
		e.Child = child
		if child.stack.IsEmpty() && child.initial != "" {
			child.open(child.initial, nil, "")
		}
	}
	return e
}

// Push always adds a new instance, even if the route is already on the stack.
// Names not known to this navigator are pushed into the nested navigator
// that resolves them, opening it first.
func (r *Router) Push(d route.Descriptor) error {
	name := r.rootAlias(d.Name())

	if child := r.focusedChild(); child != nil && child.resolves(name) {
		return child.Push(d)
	}
	if !r.knows(name) {
		for _, childName := range slices.Sorted(maps.Keys(r.children)) {
			if child := r.children[childName]; child.resolves(name) {
				r.open(childName, nil, "")
				return child.Push(d)
			}
		}
		return &UnknownRouteError{Name: name}
	}

	if d.IsNested() {
		child, ok := r.children[name]
		if !ok {
			return &NotNavigatorError{Name: name}
		}
		if !child.resolves(d.Native.Screen) {
			return &UnknownRouteError{Name: d.Native.Screen}
		}
		r.stack.Push(r.entry(name, nil, d.Key))
		return child.navigate(d.Native.Screen, d.Params, "")
	}

	r.stack.Push(r.entry(name, d.Params, d.Key))
	r.log().Debug("router: push", "route", name, "depth", r.stack.Len())
	return nil
}

// Replace swaps the focused route of the innermost navigator that knows name.
func (r *Router) Replace(name string, params route.Params) error {
	name = r.rootAlias(name)

	if child := r.focusedChild(); child != nil && child.resolves(name) {
		return child.Replace(name, params)
	}
	if !r.knows(name) {
		return &UnknownRouteError{Name: name}
	}

	r.stack.ReplaceTop(r.entry(name, params, ""))
	r.log().Debug("router: replace", "route", name, "depth", r.stack.Len())
	return nil
}

// GoBack pops the innermost navigator that has somewhere to go back to.
func (r *Router) GoBack() error {
	if child := r.focusedChild(); child != nil && child.CanGoBack() {
		return child.GoBack()
	}
	if r.stack.Len() <= 1 {
		return ErrNothingToPop
	}
	popped := r.stack.Pop()
	r.log().Debug("router: back", "from", popped.Name, "depth", r.stack.Len())
	return nil
}

// PopToTop returns the innermost navigator with history to its first route.
func (r *Router) PopToTop() error {
	if child := r.focusedChild(); child != nil && child.CanGoBack() {
		return child.PopToTop()
	}
	r.stack.Truncate(1)
	return nil
}

// CanGoBack reports whether GoBack would succeed.
func (r *Router) CanGoBack() bool {
	if child := r.focusedChild(); child != nil && child.CanGoBack() {
		return true
	}
	return r.stack.Len() > 1
}

// SetParams merges params into the focused route's params.
func (r *Router) SetParams(params route.Params) error {
	_, e := r.focused()
	if e == nil {
		return ErrEmpty
	}
	merged := maps.Clone(e.Params)
	if merged == nil {
		merged = route.Params{}
	}
	maps.Copy(merged, params)
	e.Params = merged
	return nil
}

// Params returns the focused route's params.
func (r *Router) Params() route.Params {
	if _, e := r.focused(); e != nil {
		return e.Params
	}
	return nil
}

// Pathname joins the focused route names, e.g. "/Tabs/Settings".
func (r *Router) Pathname() string {
	var parts []string
	for n := r; n != nil; {
		top := n.stack.Peek()
		if top == nil {
			break
		}
		parts = append(parts, top.Name)
		n = top.Child
	}
	return "/" + strings.Join(parts, "/")
}

// focused returns the innermost focused entry and the navigator owning it.
func (r *Router) focused() (*Router, *Entry) {
	top := r.stack.Peek()
	if top == nil {
		return r, nil
	}
	if top.Child != nil && !top.Child.stack.IsEmpty() {
		return top.Child.focused()
	}
	return r, top
}

// find returns the navigator registered as name at any depth.
func (r *Router) find(name string) *Router {
	if r.name == name {
		return r
	}
	for _, childName := range slices.Sorted(maps.Keys(r.children)) {
		if found := r.children[childName].find(name); found != nil {
			return found
		}
	}
	return nil
}

// Run opens start and then keeps running whichever screen is focused until
// a screen returns ErrExit, a screen fails, or ctx is done.
func (r *Router) Run(ctx context.Context, start route.Descriptor) error {
	scope := nav.NewScope(r.Host(), r)

	if err := scope.Facade().Navigate(start); err != nil {
		return fmt.Errorf("router: start: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		owner, entry := r.focused()
		if entry == nil {
			return nil
		}

		fn, ok := owner.screens[entry.Name]
		if !ok {
			return fmt.Errorf("router: screen %q not registered", entry.Name)
		}

		frame := Frame{Entry: *entry, Path: r.Pathname(), Nav: scope.Facade()}
		if err := fn(ctx, frame); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			return fmt.Errorf("router: screen %s error: %w", entry.Name, err)
		}
	}
}
