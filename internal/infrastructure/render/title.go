package render

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/wenbian/internal/domain/palette"
)

// Glow drawn behind title text on dark scenes.
var titleGlow = palette.RGBA(224, 216, 192, 0.3)

// TitleStyle is how a title is painted for one tone.
type TitleStyle struct {
	Text color.RGBA
	// Glow is nil when the tone draws no glow.
	Glow color.Color
}

// StyleFor returns the title style of a tone. Light scenes get ink text;
// dark scenes get paper text with a soft glow.
func StyleFor(tone palette.Tone) TitleStyle {
	if tone == palette.Light {
		return TitleStyle{Text: palette.Bg}
	}
	return TitleStyle{Text: palette.White, Glow: titleGlow}
}

// TitleOverlay is the scene title element. It implements the loop's title
// sink and fades in and out over a fixed number of ticks.
type TitleOverlay struct {
	fadeFrames int

	text    string
	tone    palette.Tone
	visible bool
	alpha   float64
	tween   *gween.Tween
}

// NewTitleOverlay creates a hidden title. fadeFrames <= 0 switches instantly.
func NewTitleOverlay(fadeFrames int) *TitleOverlay {
	return &TitleOverlay{fadeFrames: fadeFrames}
}

// ShowTitle sets the text and starts fading in from the current alpha.
func (t *TitleOverlay) ShowTitle(text string, tone palette.Tone) {
	t.text = text
	t.tone = tone
	t.visible = true
	t.fadeTo(1)
}

// HideTitle starts fading out. The text stays until the fade finishes.
func (t *TitleOverlay) HideTitle() {
	t.visible = false
	t.fadeTo(0)
}

func (t *TitleOverlay) fadeTo(target float64) {
	if t.fadeFrames <= 0 {
		t.alpha = target
		t.tween = nil
		if !t.visible {
			t.text = ""
		}
		return
	}
	t.tween = gween.New(float32(t.alpha), float32(target), float32(t.fadeFrames), ease.InOutQuad)
}

// Update advances the fade by one tick.
func (t *TitleOverlay) Update() {
	if t.tween == nil {
		return
	}
	v, done := t.tween.Update(1)
	t.alpha = float64(v)
	if done {
		t.tween = nil
		if !t.visible {
			t.alpha = 0
			t.text = ""
		}
	}
}

// Text returns the title being shown or faded out.
func (t *TitleOverlay) Text() string { return t.text }

// Tone returns the tone of the scene the title belongs to.
func (t *TitleOverlay) Tone() palette.Tone { return t.tone }

// Visible reports whether the title was shown and not yet hidden.
func (t *TitleOverlay) Visible() bool { return t.visible }

// Alpha returns the current opacity in 0..1.
func (t *TitleOverlay) Alpha() float64 { return t.alpha }

// Fading reports whether a fade is in progress.
func (t *TitleOverlay) Fading() bool { return t.tween != nil }

// Drawable reports whether anything would be painted this frame.
func (t *TitleOverlay) Drawable() bool {
	return t.text != "" && t.alpha > 0
}

// Style returns the style of the current title.
func (t *TitleOverlay) Style() TitleStyle {
	return StyleFor(t.tone)
}

// WithAlpha returns c with its opacity multiplied by a (0..1).
func WithAlpha(c color.Color, a float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	n.A = uint8(float64(n.A)*a + 0.5)
	return n
}

// GlowOffsets are the pixel offsets the glow is stamped at around the text.
var GlowOffsets = [][2]float64{
	{-2, 0}, {2, 0}, {0, -2}, {0, 2},
	{-1.5, -1.5}, {1.5, -1.5}, {-1.5, 1.5}, {1.5, 1.5},
}
