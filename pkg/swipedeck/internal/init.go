// Package internal contains the core infrastructure for the swipedeck UI framework.
// This includes SDL initialization, input and gesture processing, theming,
// localization and rendering utilities.
// Types and functions in this package are not part of the public API.
package internal
