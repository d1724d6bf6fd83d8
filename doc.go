// Package animbridge lets a vector animation engine run on top of a
// render backend that it knows nothing about.
//
// # Overview
//
// The engine (see package engine) owns files, artboards, linear
// animations and state machines. The backend owns every render resource:
// paths, paints, gradients, images, vertex buffers and the draw target.
// animbridge sits between them:
//
//   - A Backend is the fixed command table a render backend implements.
//     Every resource it creates is an opaque handle that only the backend
//     looks inside.
//   - A Factory adapts a Backend to engine.Factory, so that every
//     primitive the engine creates is backed by a backend handle that is
//     released exactly once.
//   - Import parses file bytes with an engine.Importer and returns a File.
//     From a File the host instantiates an Artboard, and from an Artboard
//     a Scene: a LinearAnimation or a StateMachine.
//   - Scenes are driven with AdvanceAndApply and Draw, or with
//     AdvanceAndMaybeDraw and a Viewport that maps pointer coordinates.
//   - State machines expose inputs and the events reported by the most
//     recent advance, with their custom properties.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/animbridge"
//	    "github.com/gogpu/animbridge/backend/raster"
//	    "github.com/gogpu/animbridge/engine/yamldoc"
//	)
//
//	b := raster.New()
//	file, err := animbridge.Import(data, yamldoc.NewImporter(), b)
//	if err != nil {
//	    return err
//	}
//	defer file.Release()
//
//	artboard, ok := file.Artboard(animbridge.ByDefault())
//	...
//	scene, ok := artboard.Scene(animbridge.ByDefault())
//	...
//	canvas := raster.NewCanvas(512, 512)
//	vp := animbridge.NewViewport(512, 512)
//	scene.AdvanceAndMaybeDraw(canvas, time.Second/60, vp)
//
// # Ownership
//
// Every object handed out by this package has exactly one Release
// method. Release scenes before their artboard, and artboards before
// their file. Releasing twice or using an object after Release is a
// contract violation and is not checked.
//
// Lookups that find nothing (bad index, unknown name, no default) return
// ok == false. They are not errors and are indistinguishable from each
// other.
//
// # Concurrency
//
// A File and everything derived from it belong to one goroutine. There
// is no internal locking. Backends shared between files must be safe for
// whatever concurrency the host uses.
package animbridge
