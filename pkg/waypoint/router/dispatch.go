package router

import (
	"github.com/waypoint-nav/waypoint/pkg/waypoint/nav"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/route"
)

// Action types understood by Dispatch.
const (
	ActionNavigate  = "NAVIGATE"
	ActionPush      = "PUSH"
	ActionReplace   = "REPLACE"
	ActionGoBack    = "GO_BACK"
	ActionPopToTop  = "POP_TO_TOP"
	ActionSetParams = "SET_PARAMS"
	ActionReset     = "RESET"
)

// Dispatch applies a generic action. Payload keys are "name", "screen",
// "params" and "key". A non-empty Target addresses a nested navigator by
// the name it was registered under.
func (r *Router) Dispatch(action nav.Action) error {
	target := r
	if action.Target != "" {
		if target = r.find(action.Target); target == nil {
			return &UnknownRouteError{Name: action.Target}
		}
	}

	d := descriptorFromPayload(action.Payload)

	switch action.Type {
	case ActionNavigate:
		return target.Navigate(route.Resolve(d))
	case ActionPush:
		return target.Push(d)
	case ActionReplace:
		return target.Replace(d.Name(), d.Params)
	case ActionGoBack:
		return target.GoBack()
	case ActionPopToTop:
		return target.PopToTop()
	case ActionSetParams:
		return target.SetParams(d.Params)
	case ActionReset:
		return target.reset(d)
	default:
		return &UnknownActionError{Type: action.Type}
	}
}

// reset clears the stack and opens d, or the initial route when d names none.
func (r *Router) reset(d route.Descriptor) error {
	name := d.RouteName
	if name == "" {
		name = r.initial
	}
	if !r.knows(name) {
		return &UnknownRouteError{Name: name}
	}
	r.stack.Clear()
	r.stack.Push(r.entry(name, d.Params, d.Key))
	r.log().Debug("router: reset", "route", name)
	return nil
}

func descriptorFromPayload(payload map[string]any) route.Descriptor {
	var d route.Descriptor
	if payload == nil {
		return d
	}

	d.RouteName, _ = payload["name"].(string)
	d.Key, _ = payload["key"].(string)

	switch p := payload["params"].(type) {
	case route.Params:
		d.Params = p
	case map[string]any:
		d.Params = route.Params(p)
	}

	if screen, _ := payload["screen"].(string); screen != "" {
		d.Native = &route.Native{Screen: screen}
	}
	return d
}
