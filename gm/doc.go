// Package gm (stands for geometry math) provides the geometry primitives
// shared by the simulation core and the renderer.
//
// It includes a simple 2d vector type called Vec and an axis aligned
// rectangle type named Rect.
package gm
