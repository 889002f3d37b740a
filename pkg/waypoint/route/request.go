package route

import "fmt"

// Request is one of the two encodings a host runtime accepts: Flat or Nested.
// The set is closed; type switches over it need only those two cases.
type Request interface {
	// Route returns the top-level destination of the request.
	Route() string
	isRequest()
}

// Flat addresses a route directly by name.
type Flat struct {
	Name   string
	Params Params
	Key    string
}

// Nested addresses a screen inside the navigator registered as Target.
type Nested struct {
	Target string
	Screen string
	Params Params
	Key    string
}

func (f Flat) Route() string   { return f.Name }
func (n Nested) Route() string { return n.Target }

func (Flat) isRequest()   {}
func (Nested) isRequest() {}

func (f Flat) String() string {
	return fmt.Sprintf("flat(%s)", f.Name)
}

func (n Nested) String() string {
	return fmt.Sprintf("nested(%s/%s)", n.Target, n.Screen)
}

// Resolve picks the call shape for a descriptor. The root substitution is
// applied before either shape is built, and params and key pass through
// unchanged.
func Resolve(d Descriptor) Request {
	name := d.Name()
	if d.IsNested() {
		return Nested{
			Target: name,
			Screen: d.Native.Screen,
			Params: d.Params,
			Key:    d.Key,
		}
	}
	return Flat{
		Name:   name,
		Params: d.Params,
		Key:    d.Key,
	}
}
