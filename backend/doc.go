// Package backend is the registry of render backends available to the
// bridge.
//
// Backend packages register themselves from init, following the
// database/sql driver pattern, and programs select them with a blank
// import:
//
//	import (
//	    "github.com/gogpu/animbridge/backend"
//	    _ "github.com/gogpu/animbridge/backend/raster"
//	)
//
//	b, err := backend.New("raster")
package backend
