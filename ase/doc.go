// Package ase implements a decoder for Aseprite sprite files (.ase, .aseprite).
//
// The decoder turns a whole file held in memory into a Document: the header
// metadata, every frame, the layer tree, per-frame per-layer cels with their
// pixel buffers, the palette, animation tags and slices. Decoding either
// succeeds completely or fails with the first error encountered; no partial
// document is ever returned.
//
// Records inside a Document reference each other through typed indices into
// the Document's own slices (FrameIndex, LayerIndex, CelIndex, TagIndex), so a
// Document is a plain value tree that is safe to share between goroutines once
// decoded. It must not be modified.
//
// Rendering helpers (CelImage, FrameImage) and the image.Decode integration
// are provided on top of the decoded document.
package ase
