// Package theme provides the semantic color system for the reviewdesk UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the semantic colors of the reviewdesk UI.
// All methods return AdaptiveColor for automatic light/dark terminal support.
type Theme interface {
	// Base colors
	Primary() lipgloss.AdaptiveColor     // Main accent (focused borders, tokens)
	PrimaryText() lipgloss.AdaptiveColor // Text drawn on Primary
	Secondary() lipgloss.AdaptiveColor   // Secondary accent (field labels, links)
	Accent() lipgloss.AdaptiveColor      // Highlights (titles)

	// Status colors
	Error() lipgloss.AdaptiveColor   // Errors, destructive
	Warning() lipgloss.AdaptiveColor // Warnings
	Success() lipgloss.AdaptiveColor // Success, passing contrast
	Info() lipgloss.AdaptiveColor    // Informational highlights

	// Text colors
	Text() lipgloss.AdaptiveColor           // Primary text
	TextMuted() lipgloss.AdaptiveColor      // De-emphasized text
	TextEmphasized() lipgloss.AdaptiveColor // Bold/important text

	// Background colors
	Background() lipgloss.AdaptiveColor          // Main background
	BackgroundSecondary() lipgloss.AdaptiveColor // Selected rows, elevated surfaces
	BackgroundDarker() lipgloss.AdaptiveColor    // Chips, badges

	// Border colors
	BorderNormal() lipgloss.AdaptiveColor  // Default borders
	BorderFocused() lipgloss.AdaptiveColor // Active/focused borders
	BorderDim() lipgloss.AdaptiveColor     // Subtle borders
}
