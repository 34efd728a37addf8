// Package paint provides a minimal, predictable software 2D painter.
//
// The painter draws lines, thick strokes, and filled triangles into a
// caller-provided Target. It does not require a full framebuffer and avoids
// allocations in the draw hot path, so a single Painter can be reused for
// every frame.
package paint
