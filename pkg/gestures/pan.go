// Package gestures turns raw pointer events into pan gesture samples.
package gestures

import (
	"fmt"
	"math"
	"time"

	"github.com/go-drift/sheet/pkg/graphics"
)

// DefaultTouchSlop is the distance in points a pointer must travel before a
// pan is recognized.
const DefaultTouchSlop = 8.0

// VelocityTimeout is how long the pointer may rest before release for the
// release to still count as a fling. A later release reports zero velocity.
const VelocityTimeout = 100 * time.Millisecond

// PointerPhase identifies the kind of pointer event.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
)

// PointerEvent is a single pointer sample delivered by the host.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Phase     PointerPhase
	// Time is when the sample was taken. Zero means time.Now().
	Time time.Time
}

// PanState is the lifecycle state of a pan gesture.
type PanState int

const (
	// PanPossible means no pan is in progress.
	PanPossible PanState = iota
	// PanBegan means movement just exceeded the slop.
	PanBegan
	// PanChanged means a new movement sample is available.
	PanChanged
	// PanEnded means the pointer was lifted after a recognized pan.
	PanEnded
	// PanCancelled means the host cancelled the pointer mid-pan.
	PanCancelled
	// PanFailed means the movement was not a vertical pan.
	PanFailed
)

func (s PanState) String() string {
	switch s {
	case PanPossible:
		return "possible"
	case PanBegan:
		return "began"
	case PanChanged:
		return "changed"
	case PanEnded:
		return "ended"
	case PanCancelled:
		return "cancelled"
	case PanFailed:
		return "failed"
	default:
		return fmt.Sprintf("PanState(%d)", int(s))
	}
}

// IsTerminal reports whether s ends a gesture.
func (s PanState) IsTerminal() bool {
	return s == PanEnded || s == PanCancelled || s == PanFailed
}

// PanRecognizer recognizes vertical pans for a single pointer.
//
// Translation accumulates movement since the gesture began until the handler
// resets it with SetTranslation, which lets handlers consume per-sample deltas.
// Velocity is smoothed with an exponential moving average.
//
// All methods must be called from the host's UI loop.
type PanRecognizer struct {
	// OnPan fires on every state change and on every Changed sample.
	OnPan func(*PanRecognizer)
	// Slop overrides DefaultTouchSlop when positive.
	Slop float64

	state       PanState
	pointer     int64
	tracking    bool
	start       graphics.Offset
	last        graphics.Offset
	lastTime    time.Time
	translation graphics.Offset
	velocity    float64
}

// NewPanRecognizer returns a recognizer that reports to onPan.
func NewPanRecognizer(onPan func(*PanRecognizer)) *PanRecognizer {
	return &PanRecognizer{OnPan: onPan}
}

// State returns the current gesture state.
func (p *PanRecognizer) State() PanState {
	return p.state
}

// Translation returns the movement accumulated since the last reset.
func (p *PanRecognizer) Translation() graphics.Offset {
	return p.translation
}

// SetTranslation replaces the accumulated translation.
func (p *PanRecognizer) SetTranslation(t graphics.Offset) {
	p.translation = t
}

// Velocity returns the smoothed velocity in points per second. Only the
// vertical component is tracked.
func (p *PanRecognizer) Velocity() graphics.Offset {
	return graphics.Offset{Y: p.velocity}
}

// HandleEvent feeds a pointer sample to the recognizer.
func (p *PanRecognizer) HandleEvent(event PointerEvent) {
	if event.Time.IsZero() {
		event.Time = time.Now()
	}
	switch event.Phase {
	case PointerPhaseDown:
		p.handleDown(event)
	case PointerPhaseMove:
		if p.tracking && event.PointerID == p.pointer {
			p.handleMove(event)
		}
	case PointerPhaseUp:
		if p.tracking && event.PointerID == p.pointer {
			p.handleUp(event)
		}
	case PointerPhaseCancel:
		if p.tracking && event.PointerID == p.pointer {
			p.handleCancel()
		}
	}
}

func (p *PanRecognizer) handleDown(event PointerEvent) {
	if p.tracking {
		return
	}
	p.tracking = true
	p.pointer = event.PointerID
	p.start = event.Position
	p.last = event.Position
	p.lastTime = event.Time
	p.translation = graphics.Offset{}
	p.velocity = 0
	p.state = PanPossible
}

func (p *PanRecognizer) handleMove(event PointerEvent) {
	delta := event.Position.Sub(p.last)
	if dt := event.Time.Sub(p.lastTime).Seconds(); dt > 0 {
		inst := delta.Y / dt
		p.velocity = p.velocity*0.8 + inst*0.2
	}
	p.last = event.Position
	p.lastTime = event.Time

	if p.state == PanPossible {
		total := event.Position.Sub(p.start)
		primary := math.Abs(total.Y)
		orthogonal := math.Abs(total.X)
		slop := p.slop()
		switch {
		case primary > slop && primary >= orthogonal:
			p.translation = graphics.Offset{Y: total.Y}
			p.setState(PanBegan)
		case orthogonal > slop:
			p.tracking = false
			p.setState(PanFailed)
			p.state = PanPossible
		}
		return
	}

	p.translation = p.translation.Add(graphics.Offset{Y: delta.Y})
	p.setState(PanChanged)
}

func (p *PanRecognizer) handleUp(event PointerEvent) {
	p.tracking = false
	if event.Time.Sub(p.lastTime) > VelocityTimeout {
		p.velocity = 0
	}
	if p.state == PanBegan || p.state == PanChanged {
		p.setState(PanEnded)
	}
	p.state = PanPossible
}

func (p *PanRecognizer) handleCancel() {
	p.tracking = false
	if p.state == PanBegan || p.state == PanChanged {
		p.setState(PanCancelled)
	}
	p.state = PanPossible
}

func (p *PanRecognizer) setState(state PanState) {
	p.state = state
	if p.OnPan != nil {
		p.OnPan(p)
	}
}

func (p *PanRecognizer) slop() float64 {
	if p.Slop > 0 {
		return p.Slop
	}
	return DefaultTouchSlop
}
