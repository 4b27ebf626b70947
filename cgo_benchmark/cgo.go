//go:build cgo && (darwin || linux)
// +build cgo
// +build darwin linux

// Package cgo_benchmark provides CGO benchmarks for comparison with purego.
package cgo_benchmark

/*
#cgo pkg-config: libvlc
#include <stdlib.h>
#include <vlc/vlc.h>

// Returns a pointer to the static version string
const char* cgo_vlc_get_version() {
    return libvlc_get_version();
}

// Creates an instance and a player, then releases both in reverse order
int cgo_vlc_create_destroy() {
    static const char *argv[] = { "--no-video", "--no-audio" };
    libvlc_instance_t *inst = libvlc_new(2, argv);
    if (inst == NULL)
        return -1;
    libvlc_media_player_t *mp = libvlc_media_player_new(inst);
    if (mp == NULL) {
        libvlc_release(inst);
        return -2;
    }
    libvlc_media_player_release(mp);
    libvlc_release(inst);
    return 0;
}

// Minimal CGO function - just a noop to measure pure call overhead
int cgo_noop() {
    return 42;
}
*/
import "C"

// Noop calls a minimal C function to measure pure call overhead
func Noop() int {
	return int(C.cgo_noop())
}

// GetVLCVersion calls libvlc_get_version via CGO
func GetVLCVersion() string {
	return C.GoString(C.cgo_vlc_get_version())
}

// CreateDestroy creates and releases a libvlc instance and player
func CreateDestroy() int {
	return int(C.cgo_vlc_create_destroy())
}
