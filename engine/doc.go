// Package engine defines the contract between the bridge and an
// Animation Engine.
//
// The engine owns files, artboards, linear animations and state
// machines and evaluates them. It never rasterizes anything itself:
// every path, paint, gradient, image and buffer it needs is obtained
// from a Factory, and every frame is emitted as calls on a Renderer.
// The bridge implements Factory and Renderer on top of a render
// backend; engines implement File and the object interfaces reachable
// from it.
//
// Render primitives are reference counted. A primitive returned by a
// Factory carries one reference owned by the caller. Callers that share
// a primitive call Ref, and every owner calls Unref exactly once when it
// is done. The backing resource is released when the count reaches zero.
//
// Nothing in this package is safe for concurrent use. One goroutine owns
// a File and everything derived from it.
package engine
