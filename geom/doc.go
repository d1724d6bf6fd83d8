// Package geom holds the small amount of 2D math shared by the bridge,
// the engine contract and the backends: points, row-major affine
// transforms, axis-aligned bounds and the contain/center viewport fit.
//
// All values are float32 because that is the precision the engine and
// the command table exchange.
package geom
