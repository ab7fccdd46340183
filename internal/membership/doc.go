// Package membership tracks which points belong to which cluster across
// iterations using compressed bitmaps of point indices.
package membership
