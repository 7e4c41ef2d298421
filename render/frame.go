// SPDX-License-Identifier: EPL-2.0

package render

// Canvas dimensions. The preview surface is a fixed 16:9 frame;
// uploaded images are cover-cropped onto it.
const (
	CanvasWidth  = 1280
	CanvasHeight = 720
)

// FallbackDuration is used when no voice duration is known, in seconds.
const FallbackDuration = 10.0

const (
	// maxZoom is the extra scale reached at the end of the spot.
	maxZoom = 0.15
	// panFraction of the canvas width is the total horizontal drift.
	panFraction = 0.05
	// headlineEntrance is the progress window of the headline slide-in.
	headlineEntrance = 0.1
	// headlineSlidePx is how far above rest the headline starts.
	headlineSlidePx = 24.0
)

// Rect is an axis-aligned rectangle in image space.
type Rect struct {
	X, Y, W, H float64
}

// Frame is the fully computed state of one preview frame. It is pure
// data; the renderer turns it into pixels.
type Frame struct {
	Progress float64
	Scale    float64
	PanX     float64

	// Src is the image sub-rectangle drawn over the whole canvas.
	Src Rect

	HeadlineOffsetY float64
	HeadlineOpacity float64
}

// Progress maps elapsed seconds onto [0, 1] of the spot. A zero or
// negative duration falls back to FallbackDuration so the animation
// still runs before any voice is loaded.
func Progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		duration = FallbackDuration
	}
	p := elapsed / duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// ZoomScale is the Ken Burns zoom at progress p: 1 at the start,
// 1+maxZoom at the end, linear in between.
func ZoomScale(p float64) float64 {
	return 1 + maxZoom*p
}

// PanX is the horizontal drift at progress p, in canvas pixels.
func PanX(p float64, canvasW int) float64 {
	return panFraction * float64(canvasW) * p
}

// CoverRect is the centered sub-rectangle of an imgW by imgH image
// that fills a canvasW by canvasH surface without distortion, cropping
// whichever axis overflows.
func CoverRect(imgW, imgH, canvasW, canvasH int) Rect {
	iw, ih := float64(imgW), float64(imgH)
	cw, ch := float64(canvasW), float64(canvasH)

	if iw*ch > cw*ih {
		// Image is wider than the canvas; crop the sides.
		w := ih * cw / ch
		return Rect{X: (iw - w) / 2, Y: 0, W: w, H: ih}
	}
	h := iw * ch / cw
	return Rect{X: 0, Y: (ih - h) / 2, W: iw, H: h}
}

// viewRect shrinks cover by scale around its center and shifts it by
// panX canvas pixels, mapped into image space through the current
// view. The motion never leaves cover: the pan budget is smaller than
// the margin the zoom opens up at every progress value.
func viewRect(cover Rect, scale, panX float64, canvasW int) Rect {
	w := cover.W / scale
	h := cover.H / scale
	dx := panX * cover.W / (scale * float64(canvasW))
	return Rect{
		X: cover.X + (cover.W-w)/2 + dx,
		Y: cover.Y + (cover.H-h)/2,
		W: w,
		H: h,
	}
}

// ComputeFrame derives the complete frame state for elapsed seconds of
// a duration-second spot over an imgW by imgH image.
func ComputeFrame(elapsed, duration float64, imgW, imgH int) Frame {
	p := Progress(elapsed, duration)
	scale := ZoomScale(p)
	panX := PanX(p, CanvasWidth)
	cover := CoverRect(imgW, imgH, CanvasWidth, CanvasHeight)

	entrance := p / headlineEntrance
	if entrance > 1 {
		entrance = 1
	}
	opacity := 2 * p
	if opacity > 1 {
		opacity = 1
	}

	return Frame{
		Progress:        p,
		Scale:           scale,
		PanX:            panX,
		Src:             viewRect(cover, scale, panX, CanvasWidth),
		HeadlineOffsetY: headlineSlidePx * (1 - entrance),
		HeadlineOpacity: opacity,
	}
}
