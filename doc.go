// Package knitdither quantizes a color image to a small palette of yarn
// colors for weft-knit double-bed machine knitting, subject to two hard
// fabrication constraints: within every window of UseWithin consecutive
// stitches along a row, every yarn must appear at least once (a bound on
// float length); and within every window of CrossWithin consecutive
// stitches, the two beds must cross at least once (two uses of the same
// yarn separated by an odd number of stitches).
//
// Dither is the entry point: for the exact method it builds the
// state-transition tables once per image (package table), solves each row
// either exactly (package optimalsolve) or approximately without tables
// (package beamsolve), and optionally
// diffuses quantization error into the next row (package diffusion).
// Rows are solved independently of each other except for that diffusion
// step, so Dither parallelizes only within a row (via package
// workerpool), not across rows.
package knitdither
