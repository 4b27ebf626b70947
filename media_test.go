package vlcplayer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestClassifyURL(t *testing.T) {
	tests := []struct {
		url  string
		want MediaKind
	}{
		{"/sdcard/Movies/a.mp4", MediaPath},
		{"/", MediaPath},
		{DefaultURL, MediaLocation},
		{"file:///tmp/a.mp4", MediaLocation},
		{"rtsp://camera/stream", MediaLocation},
		{"relative/a.mp4", MediaLocation},
		{"", MediaLocation},
	}

	for _, tt := range tests {
		if got := ClassifyURL(tt.url); got != tt.want {
			t.Errorf("ClassifyURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestNewMediaDescriptorKind(t *testing.T) {
	tests := []struct {
		url      string
		wantCall string
	}{
		{"/tmp/clip.mkv", "new_media_path /tmp/clip.mkv"},
		{"http://example.com/clip.mkv", "new_media_location http://example.com/clip.mkv"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			e := newFakeEngine()
			media, err := newMedia(e, 1, ProbeMedia(tt.url), []string{":a", ":b"})
			if err != nil {
				t.Fatalf("newMedia failed: %v", err)
			}
			if len(e.calls) != 1 || e.calls[0] != tt.wantCall {
				t.Errorf("calls = %q, want [%q]", e.calls, tt.wantCall)
			}
			if got := e.options[media]; len(got) != 2 || got[0] != ":a" || got[1] != ":b" {
				t.Errorf("options = %q", got)
			}
		})
	}
}

func TestNewMediaFailure(t *testing.T) {
	e := newFakeEngine()
	e.failMedia = true
	_, err := newMedia(e, 1, ProbeMedia("http://x"), nil)
	if !errors.Is(err, ErrMediaConstruction) {
		t.Errorf("error = %v, want ErrMediaConstruction", err)
	}
}

func TestProbeMedia(t *testing.T) {
	dir := t.TempDir()

	// FLV file header: signature, version 1, audio+video flags, header size.
	flv := filepath.Join(dir, "clip.flv")
	header := []byte{'F', 'L', 'V', 0x01, 0x05, 0x00, 0x00, 0x00, 0x09}
	if err := os.WriteFile(flv, header, 0o644); err != nil {
		t.Fatal(err)
	}

	info := ProbeMedia(flv)
	if info.Kind != MediaPath {
		t.Errorf("Kind = %v, want path", info.Kind)
	}
	if info.MIME != "video/x-flv" || !info.Video {
		t.Errorf("MIME = %q Video = %v, want video/x-flv", info.MIME, info.Video)
	}

	text := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(text, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if info := ProbeMedia(text); info.MIME != "" {
		t.Errorf("MIME for text = %q, want empty", info.MIME)
	}

	if info := ProbeMedia(filepath.Join(dir, "missing.mp4")); info.MIME != "" || info.Kind != MediaPath {
		t.Errorf("missing file probe = %+v", info)
	}

	if info := ProbeMedia(DefaultURL); info.Kind != MediaLocation || info.MIME != "" {
		t.Errorf("remote probe = %+v", info)
	}
}
