// Package router is an in-memory host navigation runtime with named routes,
// a back stack per navigator and nested navigators.
//
// It implements nav.Host and the optional capabilities, so a facade bound to
// it can exercise every operation. SetProfile narrows what it advertises,
// which is how older or smaller runtimes are emulated.
//
// # Basic Usage
//
//	tabs := router.New().
//	    Register("Feed", feedScreen).
//	    Register("Settings", settingsScreen)
//
//	r := router.New().
//	    Register("Home", homeScreen).
//	    RegisterNavigator("Tabs", tabs)
//
//	f := nav.Bind(r.Host(), r)
//	f.Navigate(route.Descriptor{RouteName: "Tabs", Native: &route.Native{Screen: "Settings"}})
//	r.Pathname() // "/Tabs/Settings"
//
// # Running Screens
//
// Run opens a start route and then calls the ScreenFunc of whatever route is
// focused, over and over. Screens navigate through frame.Nav; the loop
// follows. A screen returns ErrExit to stop.
//
//	r.Run(ctx, route.Descriptor{RouteName: "Home"})
//
// # Resolution Rules
//
// Flat requests for a route already on the stack pop back to it. Names
// unknown to a navigator are looked up in its nested navigators, the focused
// one first. route.Root ("/") resolves to the navigator's initial route,
// which is the first route registered unless SetInitial says otherwise.
package router
