//go:build darwin || linux

package vlcplayer

import (
	"errors"
	"testing"
)

func TestLibVLCAvailable(t *testing.T) {
	if !IsAvailable() {
		t.Skip("libvlc not available")
	}

	version := Version()
	if version == "" {
		t.Error("Version returned empty string")
	}
	t.Logf("libvlc version: %s", version)
}

func TestNativeCreateDestroy(t *testing.T) {
	if !IsAvailable() {
		t.Skip("libvlc not available")
	}

	engine, err := NativeEngine()
	if err != nil {
		t.Fatalf("NativeEngine failed: %v", err)
	}
	b, err := ResolveField(&testActivity{}, "Instance")
	if err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Verbose = false
	cfg.ExtraArgs = []string{"--no-video", "--no-audio"}
	a := NewAdapter(engine, b, cfg)

	act := &testActivity{}
	if err := a.Create(act); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if act.Instance == 0 {
		t.Error("no token stored")
	}

	a.Stop(act)
	a.Destroy(act)
	a.Destroy(act)
	if act.Instance != 0 {
		t.Errorf("token after Destroy = %d", act.Instance)
	}
}

func TestNativeMediaDescriptors(t *testing.T) {
	if !IsAvailable() {
		t.Skip("libvlc not available")
	}

	engine, err := NativeEngine()
	if err != nil {
		t.Fatal(err)
	}
	instance := engine.NewInstance([]string{"--no-video", "--no-audio"})
	if instance == 0 {
		t.Fatalf("libvlc_new failed: %s", engineError(engine))
	}
	defer engine.ReleaseInstance(instance)

	for _, url := range []string{"/tmp/does-not-matter.mp4", DefaultURL} {
		media, err := newMedia(engine, instance, ProbeMedia(url), DefaultConfig().MediaOptions())
		if err != nil {
			t.Fatalf("newMedia(%q) failed: %v", url, err)
		}
		engine.ReleaseMedia(media)
	}
}

func TestNativeEngineError(t *testing.T) {
	if IsAvailable() {
		t.Skip("libvlc available")
	}
	if _, err := NativeEngine(); !errors.Is(err, ErrEngineUnavailable) {
		t.Errorf("NativeEngine error = %v, want ErrEngineUnavailable", err)
	}
}
