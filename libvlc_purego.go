//go:build (darwin || linux) && !cgo

// libvlc binding loaded at runtime with purego.
//
// Only the libVLC 3.x entry points used by the lifecycle adapter are
// registered. The library is opened lazily on first use.

package vlcplayer

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

var (
	libvlcOnce    sync.Once
	libvlcHandle  uintptr
	libvlcInitErr error
	libvlcLoaded  bool
)

// libvlc function pointers
var (
	libvlcNew     func(argc int32, argv uintptr) uintptr
	libvlcRelease func(instance uintptr)

	libvlcMediaPlayerNew      func(instance uintptr) uintptr
	libvlcMediaPlayerRelease  func(player uintptr)
	libvlcMediaPlayerSetMedia func(player, media uintptr)
	libvlcMediaPlayerPlay     func(player uintptr) int32
	libvlcMediaPlayerStop     func(player uintptr)

	libvlcMediaPlayerSetXWindow  func(player uintptr, drawable uint32)
	libvlcMediaPlayerSetNSObject func(player uintptr, drawable uintptr)

	libvlcMediaNewPath     func(instance uintptr, path string) uintptr
	libvlcMediaNewLocation func(instance uintptr, mrl string) uintptr
	libvlcMediaAddOption   func(media uintptr, option string)
	libvlcMediaRelease     func(media uintptr)

	libvlcVideoSetAspectRatio func(player uintptr, aspect uintptr)
	libvlcVideoSetScale       func(player uintptr, scale float32)

	libvlcGetVersion func() uintptr
	libvlcErrmsg     func() uintptr
)

// loadLibVLC loads the libvlc shared library.
func loadLibVLC() error {
	libvlcOnce.Do(func() {
		libvlcInitErr = loadLibVLCLib()
		if libvlcInitErr == nil {
			libvlcLoaded = true
		}
	})
	return libvlcInitErr
}

func loadLibVLCLib() error {
	paths := getLibVLCPaths()

	var lastErr error
	for _, path := range paths {
		handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			libvlcHandle = handle
			if err := loadLibVLCSymbols(); err != nil {
				purego.Dlclose(handle)
				lastErr = err
				continue
			}
			return nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return fmt.Errorf("%w: %w", ErrEngineUnavailable, lastErr)
	}
	return fmt.Errorf("%w: not found in any standard location", ErrEngineUnavailable)
}

func getLibVLCPaths() []string {
	var paths []string

	libName := "libvlc.so.5"
	if runtime.GOOS == "darwin" {
		libName = "libvlc.dylib"
	}

	// Environment variable overrides
	if envPath := os.Getenv("VLC_LIB_PATH"); envPath != "" {
		paths = append(paths, envPath)
	}
	if envPath := os.Getenv("STREAM_SDK_LIB_PATH"); envPath != "" {
		paths = append(paths, filepath.Join(envPath, libName))
	}

	// Next to the executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, libName),
			filepath.Join(exeDir, "..", "lib", libName),
		)
	}

	if root := findSourceRoot(); root != "" {
		paths = append(paths, filepath.Join(root, "build", libName))
	}
	if root := findModuleRoot(); root != "" {
		paths = append(paths, filepath.Join(root, "build", libName))
	}

	// System paths
	switch runtime.GOOS {
	case "darwin":
		paths = append(paths,
			"libvlc.dylib",
			"/Applications/VLC.app/Contents/MacOS/lib/libvlc.dylib",
			"/usr/local/lib/libvlc.dylib",
			"/opt/homebrew/lib/libvlc.dylib",
		)
	case "linux":
		paths = append(paths,
			"libvlc.so.5",
			"libvlc.so",
			"/usr/lib/x86_64-linux-gnu/libvlc.so.5",
			"/usr/lib/aarch64-linux-gnu/libvlc.so.5",
			"/usr/local/lib/libvlc.so",
			"/usr/lib/libvlc.so.5",
		)
	}

	return paths
}

// libvlcSymbol pairs a function pointer with its exported name.
type libvlcSymbol struct {
	fptr any
	name string
}

// libvlcSymbols lists every entry point the binding registers. All must be
// present: libVLC 4.x renamed several of them.
func libvlcSymbols() []libvlcSymbol {
	syms := []libvlcSymbol{
		// Core
		{&libvlcNew, "libvlc_new"},
		{&libvlcRelease, "libvlc_release"},
		{&libvlcGetVersion, "libvlc_get_version"},
		{&libvlcErrmsg, "libvlc_errmsg"},

		// Media player
		{&libvlcMediaPlayerNew, "libvlc_media_player_new"},
		{&libvlcMediaPlayerRelease, "libvlc_media_player_release"},
		{&libvlcMediaPlayerSetMedia, "libvlc_media_player_set_media"},
		{&libvlcMediaPlayerPlay, "libvlc_media_player_play"},
		{&libvlcMediaPlayerStop, "libvlc_media_player_stop"},

		// Media
		{&libvlcMediaNewPath, "libvlc_media_new_path"},
		{&libvlcMediaNewLocation, "libvlc_media_new_location"},
		{&libvlcMediaAddOption, "libvlc_media_add_option"},
		{&libvlcMediaRelease, "libvlc_media_release"},

		// Video
		{&libvlcVideoSetAspectRatio, "libvlc_video_set_aspect_ratio"},
		{&libvlcVideoSetScale, "libvlc_video_set_scale"},
	}
	switch runtime.GOOS {
	case "darwin":
		syms = append(syms, libvlcSymbol{&libvlcMediaPlayerSetNSObject, "libvlc_media_player_set_nsobject"})
	case "linux":
		syms = append(syms, libvlcSymbol{&libvlcMediaPlayerSetXWindow, "libvlc_media_player_set_xwindow"})
	}
	return syms
}

// checkSymbols resolves every symbol before any is registered, since
// purego.RegisterLibFunc panics on a missing one.
func checkSymbols(syms []libvlcSymbol, lookup func(name string) (uintptr, error)) error {
	for _, sym := range syms {
		if _, err := lookup(sym.name); err != nil {
			return fmt.Errorf("%s: %w", sym.name, err)
		}
	}
	return nil
}

func loadLibVLCSymbols() error {
	syms := libvlcSymbols()
	err := checkSymbols(syms, func(name string) (uintptr, error) {
		return purego.Dlsym(libvlcHandle, name)
	})
	if err != nil {
		return err
	}
	for _, sym := range syms {
		purego.RegisterLibFunc(sym.fptr, libvlcHandle, sym.name)
	}
	return nil
}

// IsAvailable checks if libvlc can be loaded.
func IsAvailable() bool {
	if err := loadLibVLC(); err != nil {
		return false
	}
	return libvlcLoaded
}

// Version returns the libvlc version string.
func Version() string {
	if !IsAvailable() {
		return ""
	}
	return goStringFromPtr(libvlcGetVersion())
}

// NativeEngine returns the libvlc-backed Engine.
func NativeEngine() (Engine, error) {
	if err := loadLibVLC(); err != nil {
		return nil, err
	}
	return libvlcEngine{}, nil
}

type libvlcEngine struct{}

func (libvlcEngine) NewInstance(args []string) uintptr {
	argv, bufs := cStringArray(args)
	var argvPtr uintptr
	if len(argv) > 0 {
		argvPtr = uintptr(unsafe.Pointer(&argv[0]))
	}
	instance := libvlcNew(int32(len(args)), argvPtr)
	runtime.KeepAlive(argv)
	runtime.KeepAlive(bufs)
	return instance
}

func (libvlcEngine) ReleaseInstance(instance uintptr) {
	if instance != 0 {
		libvlcRelease(instance)
	}
}

func (libvlcEngine) NewPlayer(instance uintptr) uintptr {
	if instance == 0 {
		return 0
	}
	return libvlcMediaPlayerNew(instance)
}

func (libvlcEngine) ReleasePlayer(player uintptr) {
	if player != 0 {
		libvlcMediaPlayerRelease(player)
	}
}

func (libvlcEngine) NewMediaPath(instance uintptr, path string) uintptr {
	return libvlcMediaNewPath(instance, path)
}

func (libvlcEngine) NewMediaLocation(instance uintptr, mrl string) uintptr {
	return libvlcMediaNewLocation(instance, mrl)
}

func (libvlcEngine) AddMediaOption(media uintptr, option string) {
	libvlcMediaAddOption(media, option)
}

func (libvlcEngine) ReleaseMedia(media uintptr) {
	if media != 0 {
		libvlcMediaRelease(media)
	}
}

func (libvlcEngine) SetMedia(player, media uintptr) {
	libvlcMediaPlayerSetMedia(player, media)
}

func (libvlcEngine) SetWindow(player, window uintptr) {
	switch runtime.GOOS {
	case "darwin":
		libvlcMediaPlayerSetNSObject(player, window)
	case "linux":
		libvlcMediaPlayerSetXWindow(player, uint32(window))
	}
}

func (libvlcEngine) SetAspectRatio(player uintptr, aspect string) {
	if aspect == "" {
		libvlcVideoSetAspectRatio(player, 0)
		return
	}
	buf := cString(aspect)
	libvlcVideoSetAspectRatio(player, uintptr(unsafe.Pointer(&buf[0])))
	runtime.KeepAlive(buf)
}

func (libvlcEngine) SetScale(player uintptr, scale float32) {
	libvlcVideoSetScale(player, scale)
}

func (libvlcEngine) Play(player uintptr) int {
	return int(libvlcMediaPlayerPlay(player))
}

func (libvlcEngine) StopPlayback(player uintptr) {
	libvlcMediaPlayerStop(player)
}

func (libvlcEngine) LastError() string {
	return goStringFromPtr(libvlcErrmsg())
}
