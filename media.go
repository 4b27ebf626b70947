package vlcplayer

import (
	"fmt"
	"os"

	"github.com/h2non/filetype"
)

// MediaKind tells which libvlc constructor builds a descriptor for a URL.
type MediaKind int

const (
	MediaLocation MediaKind = iota // libvlc_media_new_location (MRL)
	MediaPath                      // libvlc_media_new_path (local file)
)

func (k MediaKind) String() string {
	switch k {
	case MediaPath:
		return "path"
	case MediaLocation:
		return "location"
	default:
		return "unknown"
	}
}

// ClassifyURL returns MediaPath for strings starting with '/', and
// MediaLocation for anything else.
func ClassifyURL(url string) MediaKind {
	if len(url) > 0 && url[0] == '/' {
		return MediaPath
	}
	return MediaLocation
}

// MediaInfo describes a playable resource before it reaches the engine.
type MediaInfo struct {
	URL  string
	Kind MediaKind
	// MIME is the sniffed content type of a local file, or "" when unknown
	// or when the resource is remote.
	MIME string
	// Video is true when MIME is a video type.
	Video bool
}

// ProbeMedia classifies url and, for local paths, sniffs the file header.
// A missing or unreadable file is not an error here: the engine reports it
// once playback starts.
func ProbeMedia(url string) MediaInfo {
	info := MediaInfo{URL: url, Kind: ClassifyURL(url)}
	if info.Kind != MediaPath || !fileExists(url) {
		return info
	}

	kind, err := filetype.MatchFile(url)
	if err != nil || kind == filetype.Unknown {
		return info
	}
	info.MIME = kind.MIME.Value
	info.Video = kind.MIME.Type == "video"
	return info
}

// newMedia builds a descriptor for info and applies options. The caller owns
// the returned handle.
func newMedia(e Engine, instance uintptr, info MediaInfo, options []string) (uintptr, error) {
	var media uintptr
	switch info.Kind {
	case MediaPath:
		media = e.NewMediaPath(instance, info.URL)
	default:
		media = e.NewMediaLocation(instance, info.URL)
	}
	if media == 0 {
		return 0, fmt.Errorf("%w: %s %q: %s", ErrMediaConstruction, info.Kind, info.URL, engineError(e))
	}

	for _, opt := range options {
		e.AddMediaOption(media, opt)
	}
	return media, nil
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}
