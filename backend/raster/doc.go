// Package raster provides a CPU render backend built on gg.
//
// Paths are stored as gg paths, paints as fill or stroke state applied
// to the gg context at draw time, gradients as gg gradient brushes and
// images as gg image buffers. A Canvas wraps a gg.Context and is the
// renderer handle passed to Scene.Draw.
//
// Images are decoded with the standard PNG, JPEG and GIF decoders plus
// the WebP, BMP and TIFF decoders from golang.org/x/image.
//
// The package registers itself as "raster" in package backend.
package raster
