// Package colors derives UI colour decisions from a single seed colour.
//
// Two computations live here and both are pure:
//
//   - PickForeground chooses black or white text for an arbitrary background
//     using WCAG relative luminance and contrast ratio.
//   - GeneratePalette expands one seed into the full set of semantic roles
//     (primary, background, card, ...) expressed in OKLCH.
//
// Malformed input never produces an error from these two entry points; each
// one falls back to a fixed interpretation of the colour instead.
package colors
