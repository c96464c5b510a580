package skin

import (
	"fmt"
	"math"
)

// Progressbar textures.
const (
	texProgressBgLeft   = "ProgressbarBg_Left"
	texProgressBg       = "ProgressbarBg"
	texProgressBgRight  = "ProgressbarBg_Right"
	texProgressFgLeft   = "ProgressbarFg_Left"
	texProgressFg       = "ProgressbarFg"
	texProgressFgRight  = "ProgressbarFg_Right"
	texProgressFgFinish = "ProgressbarFg_Finish"
)

// Progressbar shows a percentage as a filled bar with an optional
// centered "N %" label.
type Progressbar struct {
	node *Node

	bgLeft, bgMid, bgRight *Sprite
	fgLeft, fgMid, fgRight *Sprite
	fgFinish               *Sprite

	label *Label

	value  int
	filled int
}

// NewProgressbar creates a progress bar showing value percent.
//
// Options: WithWidth (default 200), WithoutLabel, WithFont, WithStyle.
func NewProgressbar(parent *Node, value int, opts ...Option) *Progressbar {
	o := applyOptions(opts)
	width := GetOpt(o, OptWidth)
	if !HasOpt(o, OptWidth) {
		width = 200
	}

	p := &Progressbar{node: NewNodeRect(parent, 0, 0, width, 0)}
	p.node.SetName("progressbar")

	p.bgLeft = NewSprite(p.node, texProgressBgLeft)
	p.bgMid = NewSprite(p.node, texProgressBg)
	p.bgRight = NewSprite(p.node, texProgressBgRight)
	p.bgMid.SetWidth(width - p.bgLeft.Width() - p.bgRight.Width())
	p.bgMid.SetLeft(p.bgLeft.Width())
	p.bgRight.SetLeft(p.bgMid.Left() + p.bgMid.Width())

	p.fgLeft = NewSprite(p.node, texProgressFgLeft)
	p.fgMid = NewSprite(p.node, texProgressFg)
	p.fgRight = NewSprite(p.node, texProgressFgRight)
	p.fgFinish = NewSprite(p.node, texProgressFgFinish)
	p.fgFinish.SetRight(0)

	p.node.FitToChildren()
	p.node.SetWidth(width)

	if !GetOpt(o, OptHideLabel) {
		p.label = NewLabel(p.node, "0 %", opts...)
		p.label.Node().SetCentered(true)
		p.label.Node().SetTop(-1)
	}

	p.SetValue(value)
	return p
}

// Node returns the progress bar node.
func (p *Progressbar) Node() *Node { return p.node }

// Label returns the percentage label, or nil when hidden.
func (p *Progressbar) Label() *Label { return p.label }

// Value returns the clamped percentage.
func (p *Progressbar) Value() int { return p.value }

// FilledWidth returns the filled width in pixels.
func (p *Progressbar) FilledWidth() int { return p.filled }

// FinishVisible reports whether the finish cap is shown.
func (p *Progressbar) FinishVisible() bool { return p.fgFinish.Visible() }

// SetValue sets the percentage, clamped to [0, 100].
func (p *Progressbar) SetValue(pct int) {
	p.value = max(0, min(100, pct))
	p.filled = int(float64(p.value) / 100 * float64(p.node.Width()))
	p.update()
}

func (p *Progressbar) update() {
	width := p.node.Width()
	filled := float32(p.filled)
	left, right := p.fgLeft.Width(), p.fgRight.Width()

	p.fgFinish.Hide()
	p.fgFinish.ClearClipBounds()

	if filled <= left+right {
		p.fgLeft.Hide()
		p.fgMid.Hide()
		p.fgRight.Show()
		p.fgRight.SetLeft(0)
	} else {
		p.fgLeft.Show()
		p.fgLeft.SetLeft(0)
		p.fgMid.Show()
		p.fgMid.SetLeft(left)
		p.fgMid.SetWidth(filled - left - right)
		p.fgRight.Show()
		p.fgRight.SetLeft(p.fgMid.Left() + p.fgMid.Width())
	}

	// Bars narrower than both caps reach the finish while still showing
	// only the right cap.
	if filled > 0 && filled >= width-right {
		p.fgFinish.Show()
		p.fgFinish.SetRight(0)
		p.fgFinish.SetClipBounds(Insets{Right: width - filled})
	}

	if p.label != nil {
		pct := 0
		if width > 0 {
			pct = int(math.Round(float64(filled) / float64(width) * 100))
		}
		p.label.SetText(fmt.Sprintf("%d %%", pct))
	}
}
