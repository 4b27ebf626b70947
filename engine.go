package vlcplayer

// Engine is the subset of the libVLC C ABI the lifecycle adapter drives.
//
// Handles are raw native pointers; 0 means NULL. Constructors return 0 on
// failure, in which case LastError may describe the cause.
type Engine interface {
	// NewInstance wraps libvlc_new.
	NewInstance(args []string) uintptr
	// ReleaseInstance wraps libvlc_release.
	ReleaseInstance(instance uintptr)

	// NewPlayer wraps libvlc_media_player_new.
	NewPlayer(instance uintptr) uintptr
	// ReleasePlayer wraps libvlc_media_player_release.
	ReleasePlayer(player uintptr)

	// NewMediaPath wraps libvlc_media_new_path.
	NewMediaPath(instance uintptr, path string) uintptr
	// NewMediaLocation wraps libvlc_media_new_location.
	NewMediaLocation(instance uintptr, mrl string) uintptr
	// AddMediaOption wraps libvlc_media_add_option.
	AddMediaOption(media uintptr, option string)
	// ReleaseMedia wraps libvlc_media_release.
	ReleaseMedia(media uintptr)

	// SetMedia wraps libvlc_media_player_set_media. The player keeps its
	// own reference to media.
	SetMedia(player, media uintptr)
	// SetWindow attaches a native window (X11 window id on Linux, NSView on
	// macOS). A zero window detaches the render target.
	SetWindow(player, window uintptr)
	// SetAspectRatio wraps libvlc_video_set_aspect_ratio; "" passes NULL.
	SetAspectRatio(player uintptr, aspect string)
	// SetScale wraps libvlc_video_set_scale.
	SetScale(player uintptr, scale float32)

	// Play wraps libvlc_media_player_play and returns its status (0 on success).
	Play(player uintptr) int
	// StopPlayback wraps libvlc_media_player_stop.
	StopPlayback(player uintptr)

	// LastError wraps libvlc_errmsg.
	LastError() string
}

// engineError returns the engine's last error message, or a placeholder.
func engineError(e Engine) string {
	if msg := e.LastError(); msg != "" {
		return msg
	}
	return "unknown error"
}
