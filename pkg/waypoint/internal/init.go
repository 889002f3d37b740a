// Package internal contains infrastructure shared by the waypoint packages:
// logging, layout helpers and directional input timing. Types and functions
// in this package are not part of the public API.
package internal
