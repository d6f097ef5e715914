// Package model defines stable boundary types for API layers.
//
// The algebra in loc, convert, and anchor is unaffected by any projection
// here. These structs are the only types intended for direct JSON
// serialization by consumers (the CLI and the gRPC service).
package model
