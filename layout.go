package vlcplayer

import (
	"fmt"
	"math"
)

// SurfaceLayout is the aspect-ratio/scale policy applied to the player
// before playback starts.
type SurfaceLayout int

const (
	SurfaceBestFit  SurfaceLayout = iota // Default aspect, scale to fit
	Surface16x9                          // Force 16:9, scale to fit
	Surface4x3                           // Force 4:3, scale to fit
	SurfaceOriginal                      // Default aspect, 1:1 pixels
)

func (l SurfaceLayout) String() string {
	switch l {
	case SurfaceBestFit:
		return "best-fit"
	case Surface16x9:
		return "16:9"
	case Surface4x3:
		return "4:3"
	case SurfaceOriginal:
		return "original"
	default:
		return "unknown"
	}
}

// AspectScale returns the libvlc_video_set_aspect_ratio and
// libvlc_video_set_scale arguments for the layout. An empty aspect means
// NULL (the source aspect); a zero scale means fit to the window.
func (l SurfaceLayout) AspectScale() (aspect string, scale float32) {
	switch l {
	case Surface16x9:
		return "16:9", 0
	case Surface4x3:
		return "4:3", 0
	case SurfaceOriginal:
		return "", 1
	default:
		return "", 0
	}
}

// ParseSurfaceLayout parses the names returned by SurfaceLayout.String.
func ParseSurfaceLayout(s string) (SurfaceLayout, error) {
	switch s {
	case "best-fit", "":
		return SurfaceBestFit, nil
	case "16:9":
		return Surface16x9, nil
	case "4:3":
		return Surface4x3, nil
	case "original":
		return SurfaceOriginal, nil
	default:
		return SurfaceBestFit, fmt.Errorf("unknown surface layout %q", s)
	}
}

// applyLayout pushes the layout's aspect/scale pair to the player.
func applyLayout(e Engine, player uintptr, l SurfaceLayout) {
	aspect, scale := l.AspectScale()
	e.SetAspectRatio(player, aspect)
	e.SetScale(player, scale)
}

// FitMode selects how the host sizes the video surface inside the display.
type FitMode int

const (
	FitBest FitMode = iota
	FitHorizontal
	FitVertical
	FitFill
	Fit16x9
	Fit4x3
	FitOriginal
)

func (m FitMode) String() string {
	switch m {
	case FitBest:
		return "best-fit"
	case FitHorizontal:
		return "fit-horizontal"
	case FitVertical:
		return "fit-vertical"
	case FitFill:
		return "fill"
	case Fit16x9:
		return "16:9"
	case Fit4x3:
		return "4:3"
	case FitOriginal:
		return "original"
	default:
		return "unknown"
	}
}

// VideoLayout is the geometry the engine reports for a decoded video.
type VideoLayout struct {
	Width, Height               int // Buffer size
	VisibleWidth, VisibleHeight int // Displayed area within the buffer
	SarNum, SarDen              int // Sample aspect ratio
}

// SurfaceSize is the result of ComputeSurfaceSize.
type SurfaceSize struct {
	// Surface is the size of the video surface, covering the full buffer.
	SurfaceWidth, SurfaceHeight int
	// Frame is the size of the enclosing frame, cropping to the visible area.
	FrameWidth, FrameHeight int
}

// ComputeSurfaceSize sizes the video surface and its frame for a display of
// displayW x displayH. When portrait disagrees with the display's
// orientation the dimensions are swapped first. Returns false if any
// required dimension is zero.
func ComputeSurfaceSize(mode FitMode, video VideoLayout, displayW, displayH int, portrait bool) (SurfaceSize, bool) {
	if video.Width*video.Height == 0 || video.VisibleWidth*video.VisibleHeight == 0 {
		return SurfaceSize{}, false
	}

	dw, dh := float64(displayW), float64(displayH)
	if (displayW > displayH && portrait) || (displayW < displayH && !portrait) {
		dw, dh = dh, dw
	}
	if dw*dh == 0 {
		return SurfaceSize{}, false
	}

	var ar, vw float64
	if video.SarNum == video.SarDen {
		// No density information, assume square pixels
		vw = float64(video.VisibleWidth)
		ar = float64(video.VisibleWidth) / float64(video.VisibleHeight)
	} else {
		if video.SarDen == 0 {
			return SurfaceSize{}, false
		}
		vw = float64(video.VisibleWidth) * float64(video.SarNum) / float64(video.SarDen)
		ar = vw / float64(video.VisibleHeight)
	}

	dar := dw / dh

	fit := func(ar float64) {
		if dar < ar {
			dh = dw / ar
		} else {
			dw = dh * ar
		}
	}

	switch mode {
	case FitBest:
		fit(ar)
	case FitHorizontal:
		dh = dw / ar
	case FitVertical:
		dw = dh * ar
	case FitFill:
	case Fit16x9:
		fit(16.0 / 9.0)
	case Fit4x3:
		fit(4.0 / 3.0)
	case FitOriginal:
		dh = float64(video.VisibleHeight)
		dw = vw
	}

	return SurfaceSize{
		SurfaceWidth:  int(math.Ceil(dw * float64(video.Width) / float64(video.VisibleWidth))),
		SurfaceHeight: int(math.Ceil(dh * float64(video.Height) / float64(video.VisibleHeight))),
		FrameWidth:    int(math.Floor(dw)),
		FrameHeight:   int(math.Floor(dh)),
	}, true
}
