// Package viz draws creatures in the terminal.
//
// The package implements a tank viewer using the Bubble Tea framework:
//
//   - [Model]: the live tank, one or more creatures ticked in real time
//   - [RunInteractive]: a creature picker that opens the tank
//   - [Canvas]: Braille-based dot canvas; each segment is a circle
//   - [Camera]: spring-damped view that follows a creature's pivot
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	Tab   - Select next creature
//	F     - Toggle camera follow
//	+/-   - Zoom
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
package viz
