// Package buffer implements the grapheme-accurate text model behind the
// blueprint editor.
//
// Coordinates are 0-based (Row, GraphemeCol).
// Ranges are half-open selections in document coordinates: [Start, End).
package buffer
