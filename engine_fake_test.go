package vlcplayer

import (
	"fmt"
	"strings"
)

// fakeEngine records every call and tracks live native objects.
type fakeEngine struct {
	next  uintptr
	calls []string

	instances map[uintptr]bool
	players   map[uintptr]bool
	media     map[uintptr]bool

	options map[uintptr][]string
	windows map[uintptr]uintptr
	aspect  map[uintptr]string
	scale   map[uintptr]float32
	stopped map[uintptr]int

	failInstance bool
	failPlayer   bool
	failMedia    bool
	playStatus   int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		next:      0x1000,
		instances: make(map[uintptr]bool),
		players:   make(map[uintptr]bool),
		media:     make(map[uintptr]bool),
		options:   make(map[uintptr][]string),
		windows:   make(map[uintptr]uintptr),
		aspect:    make(map[uintptr]string),
		scale:     make(map[uintptr]float32),
		stopped:   make(map[uintptr]int),
	}
}

func (f *fakeEngine) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeEngine) alloc() uintptr {
	f.next += 0x10
	return f.next
}

func (f *fakeEngine) NewInstance(args []string) uintptr {
	f.record("new_instance %s", strings.Join(args, " "))
	if f.failInstance {
		return 0
	}
	h := f.alloc()
	f.instances[h] = true
	return h
}

func (f *fakeEngine) ReleaseInstance(instance uintptr) {
	f.record("release_instance")
	if !f.instances[instance] {
		panic("release of unknown instance")
	}
	delete(f.instances, instance)
}

func (f *fakeEngine) NewPlayer(instance uintptr) uintptr {
	f.record("new_player")
	if f.failPlayer || !f.instances[instance] {
		return 0
	}
	h := f.alloc()
	f.players[h] = true
	return h
}

func (f *fakeEngine) ReleasePlayer(player uintptr) {
	f.record("release_player")
	if !f.players[player] {
		panic("release of unknown player")
	}
	delete(f.players, player)
}

func (f *fakeEngine) NewMediaPath(instance uintptr, path string) uintptr {
	f.record("new_media_path %s", path)
	return f.newMedia()
}

func (f *fakeEngine) NewMediaLocation(instance uintptr, mrl string) uintptr {
	f.record("new_media_location %s", mrl)
	return f.newMedia()
}

func (f *fakeEngine) newMedia() uintptr {
	if f.failMedia {
		return 0
	}
	h := f.alloc()
	f.media[h] = true
	return h
}

func (f *fakeEngine) AddMediaOption(media uintptr, option string) {
	f.options[media] = append(f.options[media], option)
}

func (f *fakeEngine) ReleaseMedia(media uintptr) {
	f.record("release_media")
	if !f.media[media] {
		panic("release of unknown media")
	}
	delete(f.media, media)
}

func (f *fakeEngine) SetMedia(player, media uintptr) { f.record("set_media") }

func (f *fakeEngine) SetWindow(player, window uintptr) {
	f.record("set_window %#x", window)
	f.windows[player] = window
}

func (f *fakeEngine) SetAspectRatio(player uintptr, aspect string) {
	f.record("set_aspect_ratio %q", aspect)
	f.aspect[player] = aspect
}

func (f *fakeEngine) SetScale(player uintptr, scale float32) {
	f.record("set_scale %g", scale)
	f.scale[player] = scale
}

func (f *fakeEngine) Play(player uintptr) int {
	f.record("play")
	return f.playStatus
}

func (f *fakeEngine) StopPlayback(player uintptr) {
	f.record("stop")
	f.stopped[player]++
}

func (f *fakeEngine) LastError() string { return "fake failure" }

// live returns the number of unreleased instances and players. Media are
// owned by the player once set, so they are not counted.
func (f *fakeEngine) live() int {
	return len(f.instances) + len(f.players)
}

func (f *fakeEngine) called(prefix string) bool {
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// countingSurface is a Surface with reference counting.
type countingSurface struct {
	window uintptr
	refs   int
}

func (s *countingSurface) WindowHandle() uintptr { return s.window }
func (s *countingSurface) Retain()               { s.refs++ }
func (s *countingSurface) Release()              { s.refs-- }
