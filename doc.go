// Package vlcplayer exposes libVLC playback to a host application through a
// narrow lifecycle boundary.
//
// Key pieces include:
//   - Create/Start/Stop/Destroy lifecycle calls keyed to a caller-owned struct
//   - Bind, resolving the int64 field that stores the native context token
//   - Engine, the libVLC C ABI surface (purego by default, cgo when enabled)
//   - SurfaceLayout and FitMode for aspect-ratio/scale and display sizing
//   - Config with YAML, .env and environment overrides
//
// # Lifecycle
//
//	Uninitialized -> Create -> Initialized -> Start -> Started
//	Started -> Stop -> Stopped -> Start -> Started
//	Initialized/Stopped -> Destroy -> Released
//
// The host stores nothing but an int64 token in its own struct; the package
// owns the engine instance, the player and the retained surface behind it.
//
//	type Activity struct {
//		Instance int64
//	}
//
//	func init() {
//		vlcplayer.MustBind(&Activity{}, "Instance")
//	}
//
// # Native Libraries
//
// The purego backend dlopens libvlc at first use. Set VLC_LIB_PATH to the
// library file, or STREAM_SDK_LIB_PATH to the directory containing it.
// With CGO enabled the package links libvlc through pkg-config instead.
// Other platforms get a stub engine that reports ErrEngineUnavailable.
package vlcplayer
