package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/route"
)

func TestResolveFlat(t *testing.T) {
	req := route.Resolve(route.Descriptor{RouteName: "Profile", Params: route.Params{"id": 42}})

	flat, ok := req.(route.Flat)
	require.True(t, ok, "expected flat request, got %T", req)
	assert.Equal(t, "Profile", flat.Name)
	assert.Equal(t, route.Params{"id": 42}, flat.Params)
	assert.Empty(t, flat.Key)
}

func TestResolveNested(t *testing.T) {
	req := route.Resolve(route.Descriptor{RouteName: "Tabs", Native: &route.Native{Screen: "Settings"}})

	nested, ok := req.(route.Nested)
	require.True(t, ok, "expected nested request, got %T", req)
	assert.Equal(t, "Tabs", nested.Target)
	assert.Equal(t, "Settings", nested.Screen)
	assert.Nil(t, nested.Params)
	assert.Empty(t, nested.Key)
}

func TestResolvePassesParamsAndKeyThrough(t *testing.T) {
	params := route.Params{"q": "go", "page": 2}

	tests := []struct {
		name string
		in   route.Descriptor
	}{
		{"flat", route.Descriptor{RouteName: "Search", Params: params, Key: "search-1"}},
		{"nested", route.Descriptor{RouteName: "Tabs", Params: params, Key: "search-1", Native: &route.Native{Screen: "Search"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			switch req := route.Resolve(tt.in).(type) {
			case route.Flat:
				assert.Equal(t, params, req.Params)
				assert.Equal(t, "search-1", req.Key)
			case route.Nested:
				assert.Equal(t, params, req.Params)
				assert.Equal(t, "search-1", req.Key)
			default:
				t.Fatalf("unexpected request %T", req)
			}
		})
	}
}

func TestResolveEmptyNameUsesRoot(t *testing.T) {
	assert.Equal(t, route.Root, route.Resolve(route.Descriptor{}).Route())
	assert.Equal(t, route.Root, route.Resolve(route.Descriptor{Native: &route.Native{Screen: "Home"}}).Route())
}

func TestResolveEmptyNativeScreenIsFlat(t *testing.T) {
	req := route.Resolve(route.Descriptor{RouteName: "Feed", Native: &route.Native{Extra: map[string]any{"x": 1}}})
	_, ok := req.(route.Flat)
	assert.True(t, ok)
}

func TestLookup(t *testing.T) {
	type address struct {
		City string
		zip  string
	}

	params := route.Params{
		"a":       map[string]any{"b": 7},
		"nested":  route.Params{"deep": map[string]any{"value": "x"}},
		"items":   []any{"zero", "one"},
		"tags":    []string{"go", "nav"},
		"address": address{City: "Lisbon", zip: "1000"},
		"ptr":     &address{City: "Porto"},
		"counts":  map[string]int{"views": 3},
		"nothing": nil,
	}

	tests := []struct {
		path  string
		want  any
		found bool
	}{
		{"a.b", 7, true},
		{"a.c", nil, false},
		{"a.b.c", nil, false},
		{"nested.deep.value", "x", true},
		{"items.1", "one", true},
		{"items[0]", "zero", true},
		{"items.5", nil, false},
		{"items.-1", nil, false},
		{"tags.1", "nav", true},
		{"address.City", "Lisbon", true},
		{"address.zip", nil, false},
		{"ptr.City", "Porto", true},
		{"counts.views", 3, true},
		{"nothing", nil, true},
		{"nothing.more", nil, false},
		{"missing", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := route.Lookup(params, tt.path)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupNilParams(t *testing.T) {
	_, ok := route.Lookup(nil, "a")
	assert.False(t, ok)
}

func TestGet(t *testing.T) {
	assert.Equal(t, 7, route.Get(route.Params{"a": map[string]any{"b": 7}}, "a.b", -1))
	assert.Equal(t, -1, route.Get(route.Params{"a": map[string]any{}}, "a.b", -1))
	assert.Equal(t, -1, route.Get(route.Params{}, "a.b", -1))
}

func TestGetDecodes(t *testing.T) {
	type filter struct {
		Query string
		Page  int
	}

	params := route.Params{
		"id":     "42",
		"filter": map[string]any{"query": "maps", "page": 3},
	}

	assert.Equal(t, 42, route.Get(params, "id", 0))
	assert.Equal(t, filter{Query: "maps", Page: 3}, route.Get(params, "filter", filter{}))
	assert.Equal(t, 9, route.Get(params, "filter.query", 9), "unconvertible value yields fallback")
}
