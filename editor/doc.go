// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The package handles key input, viewport scrolling (vertical and
// horizontal), grapheme-aware rendering with optional line numbers and
// highlighting, clipboard hooks and change events.
package editor
