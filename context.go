package vlcplayer

// Surface is a renderable target supplied by the host.
type Surface interface {
	// WindowHandle returns the native window handed to the engine:
	// an X11 window id on Linux, an NSView pointer on macOS.
	WindowHandle() uintptr
}

// Retainer is implemented by surfaces that need explicit reference counting
// while the engine renders into them.
type Retainer interface {
	Retain()
	Release()
}

// Window is a Surface backed by a raw native window handle.
type Window uintptr

// WindowHandle implements Surface.
func (w Window) WindowHandle() uintptr { return uintptr(w) }

// PlaybackContext owns the native handles behind one caller's token.
type PlaybackContext struct {
	instance uintptr
	player   uintptr

	surface Surface // held between Start and Stop only
	started bool
}

// Started reports whether playback was started and not yet stopped.
func (c *PlaybackContext) Started() bool { return c.started }

// Surface returns the retained surface, or nil outside Start/Stop.
func (c *PlaybackContext) Surface() Surface { return c.surface }

// attach retains s and binds it as the player's render target.
func (c *PlaybackContext) attach(e Engine, s Surface) {
	if r, ok := s.(Retainer); ok {
		r.Retain()
	}
	c.surface = s
	var window uintptr
	if s != nil {
		window = s.WindowHandle()
	}
	e.SetWindow(c.player, window)
}

// detach clears the render target and drops the surface reference.
func (c *PlaybackContext) detach(e Engine) {
	e.SetWindow(c.player, 0)
	if r, ok := c.surface.(Retainer); ok {
		r.Release()
	}
	c.surface = nil
}

// release frees the player, then the instance.
func (c *PlaybackContext) release(e Engine) {
	if c.player != 0 {
		e.ReleasePlayer(c.player)
		c.player = 0
	}
	if c.instance != 0 {
		e.ReleaseInstance(c.instance)
		c.instance = 0
	}
}
