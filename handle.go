package vlcplayer

import (
	"math"
	"sync"
	"sync/atomic"
)

// Handle is the pointer-sized token a caller stores in its bound field.
// The zero Handle refers to no context.
type Handle int64

var (
	handles   sync.Map // Handle -> *PlaybackContext
	handleIdx atomic.Int64
)

// newHandle registers ctx and returns its token.
func newHandle(ctx *PlaybackContext) (Handle, error) {
	h := handleIdx.Add(1)
	if h <= 0 || h == math.MaxInt64 {
		return 0, ErrAllocation
	}
	handles.Store(Handle(h), ctx)
	return Handle(h), nil
}

// Context returns the context behind h, or nil if h is zero or released.
func (h Handle) Context() *PlaybackContext {
	if h == 0 {
		return nil
	}
	v, ok := handles.Load(h)
	if !ok {
		return nil
	}
	return v.(*PlaybackContext)
}

// delete removes h from the table. Returns the context it referred to.
func (h Handle) delete() *PlaybackContext {
	if h == 0 {
		return nil
	}
	v, ok := handles.LoadAndDelete(h)
	if !ok {
		return nil
	}
	return v.(*PlaybackContext)
}

// liveHandles returns the number of registered contexts.
func liveHandles() int {
	n := 0
	handles.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
