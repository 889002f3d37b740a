package nav_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/nav"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/nav/navtest"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/route"
)

func TestNavigateFlatShape(t *testing.T) {
	host := &navtest.Recorder{}
	f := nav.Bind(host, nil)

	require.NoError(t, f.Navigate(route.Descriptor{RouteName: "Profile", Params: route.Params{"id": 42}}))

	require.Len(t, host.Calls, 1)
	assert.Equal(t, route.Flat{Name: "Profile", Params: route.Params{"id": 42}}, host.Last().Request)
}

func TestNavigateNestedShape(t *testing.T) {
	host := &navtest.Recorder{}
	f := nav.Bind(host, nil)

	require.NoError(t, f.Navigate(route.Descriptor{RouteName: "Tabs", Native: &route.Native{Screen: "Settings"}}))

	require.Len(t, host.Calls, 1)
	assert.Equal(t, route.Nested{Target: "Tabs", Screen: "Settings"}, host.Last().Request)
}

func TestNavigateEmptyNameGoesToRoot(t *testing.T) {
	host := &navtest.Recorder{}
	f := nav.Bind(host, nil)

	require.NoError(t, f.Navigate(route.Descriptor{Params: route.Params{"from": "link"}}))

	assert.Equal(t, route.Flat{Name: route.Root, Params: route.Params{"from": "link"}}, host.Last().Request)
}

func TestNavigatePropagatesHostError(t *testing.T) {
	rejected := errors.New("unknown route")
	host := &navtest.Recorder{Err: rejected}

	err := nav.Bind(host, nil).Navigate(route.Descriptor{RouteName: "Nowhere"})

	assert.Same(t, rejected, err)
}

func TestPushUsesHostPrimitive(t *testing.T) {
	host := &navtest.FullRecorder{}
	d := route.Descriptor{RouteName: "Detail", Key: "detail-7", Params: route.Params{"id": 7}}

	require.NoError(t, nav.Bind(host, nil).Push(d))

	require.Len(t, host.Calls, 1)
	assert.Equal(t, "push", host.Last().Op)
	assert.Equal(t, d, host.Last().Descriptor)
}

func TestPushFallsBackToNavigate(t *testing.T) {
	d := route.Descriptor{RouteName: "Detail", Key: "detail-7", Params: route.Params{"id": 7}}

	pushed := &navtest.Recorder{}
	require.NoError(t, nav.Bind(pushed, nil).Push(d))

	navigated := &navtest.Recorder{}
	require.NoError(t, nav.Bind(navigated, nil).Navigate(d))

	assert.Equal(t, navigated.Calls, pushed.Calls)
}

func TestPushFallsBackWhenRestricted(t *testing.T) {
	host := &navtest.FullRecorder{}
	f := nav.Bind(nav.Restrict(host, nav.CapReplace), nil)

	require.NoError(t, f.Push(route.Descriptor{RouteName: "Detail"}))

	assert.Equal(t, "navigate", host.Last().Op)
}

func TestReplace(t *testing.T) {
	host := &navtest.FullRecorder{}

	require.NoError(t, nav.Bind(host, nil).Replace(route.Descriptor{RouteName: "Login", Params: route.Params{"next": "/"}}))

	assert.Equal(t, navtest.Call{Op: "replace", Name: "Login", Params: route.Params{"next": "/"}}, host.Last())
}

func TestReplaceUnsupported(t *testing.T) {
	host := &navtest.Recorder{}

	err := nav.Bind(host, nil).Replace(route.Descriptor{RouteName: "Login"})

	require.Error(t, err)
	assert.True(t, nav.IsUnsupported(err))
	var capErr *nav.CapabilityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "replace", capErr.Op)
	assert.Equal(t, nav.CapReplace, capErr.Capability)
	assert.Empty(t, host.Calls, "no dispatch on unsupported replace")
}

func TestGetParam(t *testing.T) {
	tests := []struct {
		name   string
		params route.Params
		want   any
	}{
		{"present", route.Params{"a": map[string]any{"b": 7}}, 7},
		{"missing leaf", route.Params{"a": map[string]any{}}, "fallback"},
		{"missing root", route.Params{}, "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := nav.Bind(&navtest.Recorder{}, nav.StaticState(tt.params))
			assert.Equal(t, tt.want, f.GetParam("a.b", "fallback"))
		})
	}
}

func TestGetParamDefaultsToNil(t *testing.T) {
	f := nav.Bind(&navtest.Recorder{}, nil)
	assert.Nil(t, f.GetParam("a.b"))
}

type liveState struct {
	params route.Params
}

func (s *liveState) Params() route.Params { return s.params }

func TestGetParamReadsFreshState(t *testing.T) {
	state := &liveState{params: route.Params{"tab": "home"}}
	f := nav.Bind(&navtest.Recorder{}, state)

	assert.Equal(t, "home", f.GetParam("tab"))
	state.params = route.Params{"tab": "search"}
	assert.Equal(t, "search", f.GetParam("tab"))
}

func TestParamTyped(t *testing.T) {
	f := nav.Bind(&navtest.Recorder{}, nav.StaticState{"id": "42", "user": map[string]any{"name": "ada"}})

	assert.Equal(t, 42, nav.Param(f, "id", 0))
	assert.Equal(t, "ada", nav.Param(f, "user.name", ""))
	assert.Equal(t, "anon", nav.Param(f, "user.nick", "anon"))
}

func TestGoBackIsForwarded(t *testing.T) {
	host := &navtest.Recorder{}
	require.NoError(t, nav.Bind(host, nil).GoBack())
	assert.Equal(t, "goBack", host.Last().Op)
}

func TestPrefetch(t *testing.T) {
	legacy := &navtest.Recorder{}
	assert.NotPanics(t, func() { nav.Bind(legacy, nil).Prefetch("Anything") })
	assert.Empty(t, legacy.Calls)

	full := &navtest.FullRecorder{}
	nav.Bind(full, nil).Prefetch("Feed")
	assert.Equal(t, navtest.Call{Op: "prefetch", Name: "Feed"}, full.Last())
}

func TestPassThroughsPresent(t *testing.T) {
	host := &navtest.FullRecorder{Back: true, Path: "/Tabs/Feed"}
	f := nav.Bind(host, nil)

	assert.Equal(t, nav.CapAll, f.Capabilities())
	require.NoError(t, f.PopToTop())
	require.NoError(t, f.SetParams(route.Params{"sort": "new"}))
	require.NoError(t, f.Dispatch(nav.Action{Type: "RESET"}))

	can, ok := f.CanGoBack()
	assert.True(t, ok)
	assert.True(t, can)

	path, ok := f.Pathname()
	assert.True(t, ok)
	assert.Equal(t, "/Tabs/Feed", path)

	ops := make([]string, 0, len(host.Calls))
	for _, c := range host.Calls {
		ops = append(ops, c.Op)
	}
	assert.Equal(t, []string{"popToTop", "setParams", "dispatch"}, ops)
}

func TestPassThroughsAbsent(t *testing.T) {
	f := nav.Bind(&navtest.Recorder{}, nil)

	assert.Equal(t, nav.Capability(0), f.Capabilities())
	assert.True(t, nav.IsUnsupported(f.PopToTop()))
	assert.True(t, nav.IsUnsupported(f.SetParams(nil)))
	assert.True(t, nav.IsUnsupported(f.Dispatch(nav.Action{})))

	_, ok := f.CanGoBack()
	assert.False(t, ok)
	_, ok = f.Pathname()
	assert.False(t, ok)
}

func TestWithCapabilities(t *testing.T) {
	f := nav.Bind(&navtest.FullRecorder{}, nil, nav.WithCapabilities(nav.CapPush|nav.CapCanGoBack))

	assert.True(t, f.Has(nav.CapPush))
	assert.False(t, f.Has(nav.CapReplace))
	assert.True(t, nav.IsUnsupported(f.Replace(route.Descriptor{RouteName: "X"})))
}

func TestPushLogsResolvedRouteName(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f := nav.Bind(&navtest.FullRecorder{}, nil, nav.WithLogger(logger))

	require.NoError(t, f.Push(route.Descriptor{}))

	assert.Contains(t, buf.String(), `"msg":"push"`)
	assert.Contains(t, buf.String(), `"route":"/"`)
	assert.NotContains(t, buf.String(), `"route":""`)
}
