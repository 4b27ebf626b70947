package vlcplayer

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Adapter forwards the four lifecycle calls to an Engine, keeping each
// caller's PlaybackContext behind the token stored in its bound field.
//
// Calls for one owner must be sequential. Distinct owners share nothing but
// the token table.
type Adapter struct {
	engine  Engine
	binding *FieldBinding
	config  Config
	layout  SurfaceLayout
	log     zerolog.Logger
}

// NewAdapter returns an adapter driving engine, storing tokens through
// binding, with the media and engine settings of config.
func NewAdapter(engine Engine, binding *FieldBinding, config Config) *Adapter {
	return &Adapter{
		engine:  engine,
		binding: binding,
		config:  config,
		layout:  config.SurfaceLayout(),
		log:     logger(),
	}
}

// Config returns the adapter's settings.
func (a *Adapter) Config() Config { return a.config }

// Context returns the live context stored in owner, or nil.
func (a *Adapter) Context(owner any) *PlaybackContext {
	h, err := a.binding.Get(owner)
	if err != nil {
		return nil
	}
	return h.Context()
}

// Create constructs the engine instance and its player and stores the
// context token in owner. Partial state is released on failure.
func (a *Adapter) Create(owner any) error {
	h, err := a.binding.Get(owner)
	if err != nil {
		return err
	}
	if h.Context() != nil {
		return ErrAlreadyInitialized
	}

	ctx := &PlaybackContext{}
	ctx.instance = a.engine.NewInstance(a.config.EngineArgs())
	if ctx.instance == 0 {
		err := fmt.Errorf("%w: libvlc_new: %s", ErrEngineConstruction, engineError(a.engine))
		a.log.Error().Err(err).Strs("args", a.config.EngineArgs()).Msg("create failed")
		return err
	}

	ctx.player = a.engine.NewPlayer(ctx.instance)
	if ctx.player == 0 {
		err := fmt.Errorf("%w: libvlc_media_player_new: %s", ErrEngineConstruction, engineError(a.engine))
		ctx.release(a.engine)
		a.log.Error().Err(err).Msg("create failed")
		return err
	}

	h, err = newHandle(ctx)
	if err != nil {
		ctx.release(a.engine)
		return err
	}
	if err := a.binding.Set(owner, h); err != nil {
		h.delete()
		ctx.release(a.engine)
		return err
	}

	a.log.Debug().Int64("handle", int64(h)).Msg("context created")
	return nil
}

// Start binds surface as the render target and starts playback of the
// configured URL. It fails without side effects if owner has no context.
// A nil surface lets the engine open its own window.
func (a *Adapter) Start(owner any, surface Surface) error {
	h, err := a.binding.Get(owner)
	if err != nil {
		return err
	}
	ctx := h.Context()
	if ctx == nil {
		return ErrNotInitialized
	}
	if ctx.started {
		return ErrAlreadyStarted
	}

	ctx.attach(a.engine, surface)
	if err := a.play(ctx, a.config.URL); err != nil {
		ctx.detach(a.engine)
		a.log.Error().Err(err).Int64("handle", int64(h)).Msg("start failed")
		return err
	}
	ctx.started = true

	decoders, _ := a.config.Decoders()
	a.log.Debug().
		Int64("handle", int64(h)).
		Str("url", a.config.URL).
		Str("decoders", decoders.String()).
		Bool("hw_decoding", decoders.PreferHardware()).
		Msg("playback started")
	return nil
}

func (a *Adapter) play(ctx *PlaybackContext, url string) error {
	info := ProbeMedia(url)
	if info.MIME != "" {
		a.log.Debug().Str("path", url).Str("mime", info.MIME).Msg("probed local media")
	}

	media, err := newMedia(a.engine, ctx.instance, info, a.config.MediaOptions())
	if err != nil {
		return err
	}

	a.engine.SetMedia(ctx.player, media)
	applyLayout(a.engine, ctx.player, a.layout)
	ret := a.engine.Play(ctx.player)

	// The player holds its own reference now.
	a.engine.ReleaseMedia(media)

	if ret != 0 {
		return fmt.Errorf("%w: libvlc_media_player_play returned %d: %s", ErrPlaybackStart, ret, engineError(a.engine))
	}
	return nil
}

// Stop requests playback stop, clears the render target and drops the
// surface. It is a no-op when owner has no context or was never started.
func (a *Adapter) Stop(owner any) {
	h, err := a.binding.Get(owner)
	if err != nil {
		a.log.Warn().Err(err).Msg("stop ignored")
		return
	}
	ctx := h.Context()
	if ctx == nil || !ctx.started {
		return
	}
	a.stop(ctx)
	a.log.Debug().Int64("handle", int64(h)).Msg("playback stopped")
}

func (a *Adapter) stop(ctx *PlaybackContext) {
	a.engine.StopPlayback(ctx.player)
	ctx.detach(a.engine)
	ctx.started = false
}

// Destroy releases the player, then the instance, then the context, and
// clears owner's token. Calling it again, or without Create, is a no-op.
// A started context is stopped first.
func (a *Adapter) Destroy(owner any) {
	h, err := a.binding.Get(owner)
	if err != nil {
		a.log.Warn().Err(err).Msg("destroy ignored")
		return
	}
	if h == 0 {
		return
	}

	ctx := h.delete()
	if ctx != nil {
		if ctx.started {
			a.stop(ctx)
		}
		ctx.release(a.engine)
		a.log.Debug().Int64("handle", int64(h)).Msg("context destroyed")
	}
	_ = a.binding.Set(owner, 0)
}

var pkgConfig atomic.Pointer[Config]

// newEngine builds the engine behind Default.
var newEngine = NativeEngine

// Configure replaces the settings used by the package-level lifecycle
// calls. It applies to lifecycle calls made afterwards.
func Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	pkgConfig.Store(&cfg)
	return nil
}

// Default returns an adapter over the native engine, the binding installed
// by Bind and the settings installed by Configure (DefaultConfig otherwise).
func Default() (*Adapter, error) {
	b := Bound()
	if b == nil {
		return nil, fmt.Errorf("%w: Bind was not called", ErrBindingResolution)
	}
	engine, err := newEngine()
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if c := pkgConfig.Load(); c != nil {
		cfg = *c
	}
	return NewAdapter(engine, b, cfg), nil
}

// Create is Adapter.Create on the Default adapter.
func Create(owner any) error {
	a, err := Default()
	if err != nil {
		return err
	}
	return a.Create(owner)
}

// Start is Adapter.Start on the Default adapter.
func Start(owner any, surface Surface) error {
	a, err := Default()
	if err != nil {
		return err
	}
	return a.Start(owner, surface)
}

// Stop is Adapter.Stop on the Default adapter.
func Stop(owner any) {
	a, err := Default()
	if err != nil {
		l := logger()
		l.Warn().Err(err).Msg("stop ignored")
		return
	}
	a.Stop(owner)
}

// Destroy is Adapter.Destroy on the Default adapter.
func Destroy(owner any) {
	a, err := Default()
	if err != nil {
		l := logger()
		l.Warn().Err(err).Msg("destroy ignored")
		return
	}
	a.Destroy(owner)
}
