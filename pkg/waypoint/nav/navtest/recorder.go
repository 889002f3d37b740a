// Package navtest provides recording hosts for testing code that drives a
// nav.Facade.
package navtest

import (
	"github.com/waypoint-nav/waypoint/pkg/waypoint/nav"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/route"
)

// Call is one request received by a Recorder.
type Call struct {
	Op         string // "navigate", "push", "replace", "goBack", ...
	Request    route.Request
	Descriptor route.Descriptor
	Name       string
	Params     route.Params
	Action     nav.Action
}

// Recorder is a host with only the required capabilities. It records every
// call and returns Err (if set) from each of them.
type Recorder struct {
	Calls []Call
	Err   error
}

func (r *Recorder) Navigate(req route.Request) error {
	r.Calls = append(r.Calls, Call{Op: "navigate", Request: req})
	return r.Err
}

func (r *Recorder) GoBack() error {
	r.Calls = append(r.Calls, Call{Op: "goBack"})
	return r.Err
}

// Last returns the most recent call, or the zero Call if there were none.
func (r *Recorder) Last() Call {
	if len(r.Calls) == 0 {
		return Call{}
	}
	return r.Calls[len(r.Calls)-1]
}

// Requests returns the requests passed to Navigate, in order.
func (r *Recorder) Requests() []route.Request {
	var out []route.Request
	for _, c := range r.Calls {
		if c.Op == "navigate" {
			out = append(out, c.Request)
		}
	}
	return out
}

// FullRecorder is a Recorder that implements every optional capability.
type FullRecorder struct {
	Recorder
	Back bool   // Value reported by CanGoBack
	Path string // Value reported by Pathname
}

func (r *FullRecorder) Push(d route.Descriptor) error {
	r.Calls = append(r.Calls, Call{Op: "push", Descriptor: d})
	return r.Err
}

func (r *FullRecorder) Replace(name string, params route.Params) error {
	r.Calls = append(r.Calls, Call{Op: "replace", Name: name, Params: params})
	return r.Err
}

func (r *FullRecorder) PopToTop() error {
	r.Calls = append(r.Calls, Call{Op: "popToTop"})
	return r.Err
}

func (r *FullRecorder) SetParams(params route.Params) error {
	r.Calls = append(r.Calls, Call{Op: "setParams", Params: params})
	return r.Err
}

func (r *FullRecorder) Dispatch(action nav.Action) error {
	r.Calls = append(r.Calls, Call{Op: "dispatch", Action: action})
	return r.Err
}

func (r *FullRecorder) CanGoBack() bool {
	return r.Back
}

func (r *FullRecorder) Pathname() string {
	return r.Path
}

func (r *FullRecorder) Prefetch(name string) {
	r.Calls = append(r.Calls, Call{Op: "prefetch", Name: name})
}
