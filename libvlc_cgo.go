//go:build (darwin || linux) && cgo

// libvlc binding linked with CGO through pkg-config.

package vlcplayer

/*
#cgo pkg-config: libvlc

#include <stdint.h>
#include <stdlib.h>
#include <vlc/vlc.h>

static void vlcplayer_set_window(libvlc_media_player_t *mp, uintptr_t window)
{
#if defined(__APPLE__)
    libvlc_media_player_set_nsobject(mp, (void *)window);
#else
    libvlc_media_player_set_xwindow(mp, (uint32_t)window);
#endif
}
*/
import "C"

import "unsafe"

// IsAvailable checks if libvlc is available.
// With CGO this is always true since it links at compile time.
func IsAvailable() bool {
	return true
}

// Version returns the libvlc version string.
func Version() string {
	return C.GoString(C.libvlc_get_version())
}

// NativeEngine returns the libvlc-backed Engine.
func NativeEngine() (Engine, error) {
	return libvlcEngine{}, nil
}

type libvlcEngine struct{}

func instancePtr(h uintptr) *C.libvlc_instance_t {
	return (*C.libvlc_instance_t)(unsafe.Pointer(h))
}

func playerPtr(h uintptr) *C.libvlc_media_player_t {
	return (*C.libvlc_media_player_t)(unsafe.Pointer(h))
}

func mediaPtr(h uintptr) *C.libvlc_media_t {
	return (*C.libvlc_media_t)(unsafe.Pointer(h))
}

func (libvlcEngine) NewInstance(args []string) uintptr {
	argc := len(args)
	var argv **C.char
	if argc > 0 {
		argv = (**C.char)(C.malloc(C.size_t(argc) * C.size_t(unsafe.Sizeof(uintptr(0)))))
		defer C.free(unsafe.Pointer(argv))
		slots := unsafe.Slice(argv, argc)
		for i, a := range args {
			slots[i] = C.CString(a)
		}
		defer func() {
			for _, p := range slots {
				C.free(unsafe.Pointer(p))
			}
		}()
	}
	return uintptr(unsafe.Pointer(C.libvlc_new(C.int(argc), argv)))
}

func (libvlcEngine) ReleaseInstance(instance uintptr) {
	if instance != 0 {
		C.libvlc_release(instancePtr(instance))
	}
}

func (libvlcEngine) NewPlayer(instance uintptr) uintptr {
	if instance == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(C.libvlc_media_player_new(instancePtr(instance))))
}

func (libvlcEngine) ReleasePlayer(player uintptr) {
	if player != 0 {
		C.libvlc_media_player_release(playerPtr(player))
	}
}

func (libvlcEngine) NewMediaPath(instance uintptr, path string) uintptr {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	return uintptr(unsafe.Pointer(C.libvlc_media_new_path(instancePtr(instance), cpath)))
}

func (libvlcEngine) NewMediaLocation(instance uintptr, mrl string) uintptr {
	cmrl := C.CString(mrl)
	defer C.free(unsafe.Pointer(cmrl))
	return uintptr(unsafe.Pointer(C.libvlc_media_new_location(instancePtr(instance), cmrl)))
}

func (libvlcEngine) AddMediaOption(media uintptr, option string) {
	copt := C.CString(option)
	defer C.free(unsafe.Pointer(copt))
	C.libvlc_media_add_option(mediaPtr(media), copt)
}

func (libvlcEngine) ReleaseMedia(media uintptr) {
	if media != 0 {
		C.libvlc_media_release(mediaPtr(media))
	}
}

func (libvlcEngine) SetMedia(player, media uintptr) {
	C.libvlc_media_player_set_media(playerPtr(player), mediaPtr(media))
}

func (libvlcEngine) SetWindow(player, window uintptr) {
	C.vlcplayer_set_window(playerPtr(player), C.uintptr_t(window))
}

func (libvlcEngine) SetAspectRatio(player uintptr, aspect string) {
	if aspect == "" {
		C.libvlc_video_set_aspect_ratio(playerPtr(player), nil)
		return
	}
	car := C.CString(aspect)
	defer C.free(unsafe.Pointer(car))
	C.libvlc_video_set_aspect_ratio(playerPtr(player), car)
}

func (libvlcEngine) SetScale(player uintptr, scale float32) {
	C.libvlc_video_set_scale(playerPtr(player), C.float(scale))
}

func (libvlcEngine) Play(player uintptr) int {
	return int(C.libvlc_media_player_play(playerPtr(player)))
}

func (libvlcEngine) StopPlayback(player uintptr) {
	C.libvlc_media_player_stop(playerPtr(player))
}

func (libvlcEngine) LastError() string {
	msg := C.libvlc_errmsg()
	if msg == nil {
		return ""
	}
	return C.GoString(msg)
}
