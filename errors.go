package vlcplayer

import "errors"

var (
	// ErrAllocation is returned when no context token can be issued.
	ErrAllocation = errors.New("vlcplayer: context allocation failed")
	// ErrEngineConstruction is returned when libvlc_new or
	// libvlc_media_player_new fails.
	ErrEngineConstruction = errors.New("vlcplayer: engine construction failed")
	// ErrMediaConstruction is returned when a media descriptor cannot be built.
	ErrMediaConstruction = errors.New("vlcplayer: media construction failed")
	// ErrPlaybackStart is returned when the player refuses to start.
	ErrPlaybackStart = errors.New("vlcplayer: playback start failed")
	// ErrBindingResolution is returned when the token field cannot be resolved
	// on the caller type, or an owner does not match the bound type.
	ErrBindingResolution = errors.New("vlcplayer: binding resolution failed")

	ErrNotInitialized     = errors.New("vlcplayer: context not initialized")
	ErrAlreadyInitialized = errors.New("vlcplayer: context already initialized")
	ErrAlreadyStarted     = errors.New("vlcplayer: playback already started")
	ErrEngineUnavailable  = errors.New("vlcplayer: libvlc not available")
)
