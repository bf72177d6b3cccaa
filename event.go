package easel

// event is an empty interface used to pass window and input events through
// the display session. Events are synthesized once per frame and handled in
// the order they occurred
type event interface{}

// resized is reported when the window client area changes size. The new
// size is already constrained by the windowing layer's minimum size limits
type resized struct {
	width  int
	height int
}

// closeRequested is reported when the user asks the window to close, via
// the window decorations or the desktop environment
type closeRequested struct{}

// escapePressed is reported when the Escape key is pressed
type escapePressed struct{}
