//go:build !darwin && !linux

package vlcplayer

// IsAvailable reports false: no libvlc binding exists for this platform.
func IsAvailable() bool {
	return false
}

// Version returns an empty string on unsupported platforms.
func Version() string {
	return ""
}

// NativeEngine always fails on unsupported platforms.
func NativeEngine() (Engine, error) {
	return nil, ErrEngineUnavailable
}
