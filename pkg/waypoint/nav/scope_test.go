package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/nav"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/nav/navtest"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/route"
)

func TestScopeFacadeIsStable(t *testing.T) {
	host := &navtest.Recorder{}
	state := nav.StaticState{"id": 1}
	scope := nav.NewScope(host, state)

	first := scope.Facade()
	scope.Provide(host, state)
	assert.Same(t, first, scope.Facade())
}

func TestScopeFacadeChangesWithContext(t *testing.T) {
	host := &navtest.Recorder{}
	scope := nav.NewScope(host, nav.StaticState{"id": 1})
	first := scope.Facade()

	scope.Provide(host, nav.StaticState{"id": 2})
	second := scope.Facade()
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, second.GetParam("id"))

	scope.Provide(&navtest.Recorder{}, nil)
	assert.NotSame(t, second, scope.Facade())
}

func TestScopeAppliesOptions(t *testing.T) {
	scope := nav.NewScope(&navtest.FullRecorder{}, nil, nav.WithCapabilities(nav.CapPush))
	assert.Equal(t, nav.CapPush, scope.Facade().Capabilities())
}

func TestCapabilityString(t *testing.T) {
	assert.Equal(t, "none", nav.Capability(0).String())
	assert.Equal(t, "push|replace", (nav.CapPush | nav.CapReplace).String())
}

func TestParseCapability(t *testing.T) {
	c, ok := nav.ParseCapability("popToTop")
	assert.True(t, ok)
	assert.Equal(t, nav.CapPopToTop, c)

	c, ok = nav.ParseCapability("PUSH")
	assert.True(t, ok)
	assert.Equal(t, nav.CapPush, c)

	_, ok = nav.ParseCapability("teleport")
	assert.False(t, ok)
}

func TestRestrictNests(t *testing.T) {
	host := nav.Restrict(nav.Restrict(&navtest.FullRecorder{}, nav.CapPush|nav.CapReplace), nav.CapReplace|nav.CapDispatch)
	assert.Equal(t, nav.CapReplace, nav.Detect(host))
}

func TestRestrictStillForwards(t *testing.T) {
	inner := &navtest.FullRecorder{}
	f := nav.Bind(nav.Restrict(inner, 0), nil)

	assert.NoError(t, f.Navigate(route.Descriptor{RouteName: "Home"}))
	assert.NoError(t, f.GoBack())
	assert.Len(t, inner.Calls, 2)
}
