// SPDX-License-Identifier: EPL-2.0

package render

import (
	"image"
	"image/color"
	stddraw "image/draw"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// textMargin keeps headline and captions off the canvas edges.
	textMargin = 80
	// captionLineHeight is the baseline step for wrapped caption lines.
	captionLineHeight = 24
	// headlineBaseline is the rest position of the headline baseline.
	headlineBaseline = 140
	// overlayAlpha darkens the image by 30% so text stays readable.
	overlayAlpha = 76
)

// Renderer composites preview frames onto a fixed 1280x720 canvas:
// the Ken Burns-animated image, a darkening overlay, the animated
// headline and the progress-synced caption.
//
// It implements the playback Presenter and is safe to drive from the
// animation clock goroutine while inputs change on another.
type Renderer struct {
	mu       sync.Mutex
	canvas   *image.RGBA
	img      image.Image
	chunks   []string
	analysis *AnalysisResult
	face     font.Face
}

// NewRenderer returns a renderer with an empty black canvas.
func NewRenderer() *Renderer {
	r := &Renderer{
		canvas: image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight)),
		face:   basicfont.Face7x13,
	}
	r.fillBlack()
	return r
}

// Canvas exposes the composited surface. The clock goroutine redraws
// it in place; copy it if you need a stable snapshot.
func (r *Renderer) Canvas() *image.RGBA {
	return r.canvas
}

// SetImage installs the uploaded image and redraws the first frame.
func (r *Renderer) SetImage(img image.Image) {
	r.mu.Lock()
	r.img = img
	r.mu.Unlock()
	r.Reset()
}

// SetScript installs the ad script whose words become the captions.
func (r *Renderer) SetScript(script string) {
	r.mu.Lock()
	r.chunks = CaptionChunks(script)
	r.mu.Unlock()
}

// SetAnalysis installs the image analysis driving headline and colors.
func (r *Renderer) SetAnalysis(a *AnalysisResult) {
	r.mu.Lock()
	r.analysis = a
	r.mu.Unlock()
}

// Ready reports whether an image is loaded. Playback refuses to start
// before this.
func (r *Renderer) Ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.img != nil
}

// Reset redraws the initial frame, the idle state between sessions.
func (r *Renderer) Reset() {
	r.DrawFrame(0, FallbackDuration)
}

// MeasureTextWidth implements TextMeasurer with the renderer's face.
func (r *Renderer) MeasureTextWidth(text string) float64 {
	return float64(font.MeasureString(r.face, text)) / 64
}

// DrawFrame composites the frame for elapsed seconds of a
// duration-second spot.
func (r *Renderer) DrawFrame(elapsed, duration float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.img == nil {
		r.fillBlack()
		return
	}

	b := r.img.Bounds()
	f := ComputeFrame(elapsed, duration, b.Dx(), b.Dy())

	src := image.Rect(
		b.Min.X+int(f.Src.X+0.5),
		b.Min.Y+int(f.Src.Y+0.5),
		b.Min.X+int(f.Src.X+f.Src.W+0.5),
		b.Min.Y+int(f.Src.Y+f.Src.H+0.5),
	)
	draw.ApproxBiLinear.Scale(r.canvas, r.canvas.Bounds(), r.img, src, draw.Src, nil)

	overlay := image.NewUniform(color.RGBA{A: overlayAlpha})
	stddraw.Draw(r.canvas, r.canvas.Bounds(), overlay, image.Point{}, stddraw.Over)

	r.drawHeadline(f)
	r.drawCaption(f)
}

func (r *Renderer) drawHeadline(f Frame) {
	if r.analysis == nil {
		return
	}
	text := r.analysis.DisplayHeadline()
	if text == "" || f.HeadlineOpacity <= 0 {
		return
	}

	c := r.analysis.PrimaryColor()
	src := image.NewUniform(color.NRGBA{
		R: c.R, G: c.G, B: c.B,
		A: uint8(f.HeadlineOpacity * 255),
	})

	d := font.Drawer{
		Dst:  r.canvas,
		Src:  src,
		Face: r.face,
		Dot:  fixed.P(textMargin, headlineBaseline-int(f.HeadlineOffsetY+0.5)),
	}
	d.DrawString(text)
}

func (r *Renderer) drawCaption(f Frame) {
	chunk := ActiveChunk(r.chunks, f.Progress)
	if chunk == "" {
		return
	}

	lines := wrapLocked(r.face, chunk, CanvasWidth-2*textMargin)
	baseline := CanvasHeight - textMargin - (len(lines)-1)*captionLineHeight

	for i, line := range lines {
		w := int(float64(font.MeasureString(r.face, line)) / 64)
		d := font.Drawer{
			Dst:  r.canvas,
			Src:  image.NewUniform(color.White),
			Face: r.face,
			Dot:  fixed.P((CanvasWidth-w)/2, baseline+i*captionLineHeight),
		}
		d.DrawString(line)
	}
}

// wrapLocked is WrapText without taking the renderer lock again.
func wrapLocked(face font.Face, text string, maxWidth int) []string {
	return WrapText(faceMeasurer{face}, text, float64(maxWidth))
}

type faceMeasurer struct {
	face font.Face
}

func (m faceMeasurer) MeasureTextWidth(text string) float64 {
	return float64(font.MeasureString(m.face, text)) / 64
}

func (r *Renderer) fillBlack() {
	stddraw.Draw(r.canvas, r.canvas.Bounds(), image.Black, image.Point{}, stddraw.Src)
}
