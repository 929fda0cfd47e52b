package core

import "time"

// sequenceRand replays fixed values.
type sequenceRand struct {
	values []float64
	i      int
}

func (r *sequenceRand) Float64() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

// straightRand launches every ball horizontally to the left.
func straightRand() *sequenceRand {
	return &sequenceRand{values: []float64{0.5}}
}

// manualScheduler runs frames and timers only when the test says so.
type manualScheduler struct {
	now    time.Duration
	nextID FrameID
	order  []FrameID
	frames map[FrameID]func()
	timers []*manualTimer
}

type manualTimer struct {
	at        time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{frames: make(map[FrameID]func())}
}

func (m *manualScheduler) RequestFrame(fn func()) FrameID {
	m.nextID++
	m.frames[m.nextID] = fn
	m.order = append(m.order, m.nextID)
	return m.nextID
}

func (m *manualScheduler) CancelFrame(id FrameID) {
	delete(m.frames, id)
}

func (m *manualScheduler) After(d time.Duration, fn func()) func() {
	t := &manualTimer{at: m.now + d, fn: fn}
	m.timers = append(m.timers, t)
	return func() { t.cancelled = true }
}

// Tick runs the frames pending before the call and reports how many ran.
func (m *manualScheduler) Tick() int {
	order := m.order
	m.order = nil
	ran := 0
	for _, id := range order {
		fn, ok := m.frames[id]
		delete(m.frames, id)
		if ok {
			fn()
			ran++
		}
	}
	return ran
}

func (m *manualScheduler) Elapse(d time.Duration) {
	m.now += d
	for _, t := range m.timers {
		if !t.cancelled && !t.fired && t.at <= m.now {
			t.fired = true
			t.fn()
		}
	}
}

func (m *manualScheduler) PendingFrames() int {
	return len(m.frames)
}

type drawCall struct {
	kind       string
	x, y, w, h float64
	color      Color
}

type recordingCanvas struct {
	calls    []drawCall
	presents int
}

func (c *recordingCanvas) FillRect(x, y, w, h float64, color Color) {
	c.calls = append(c.calls, drawCall{kind: "rect", x: x, y: y, w: w, h: h, color: color})
}

func (c *recordingCanvas) FillCircle(x, y, r float64, color Color) {
	c.calls = append(c.calls, drawCall{kind: "circle", x: x, y: y, w: r, h: r, color: color})
}

func (c *recordingCanvas) Present() {
	c.presents++
}

type recordingStatus struct {
	level          string
	message        string
	restartVisible bool
}

func (s *recordingStatus) SetLevel(text string) { s.level = text }
func (s *recordingStatus) SetMessage(text string) { s.message = text }
func (s *recordingStatus) SetRestartVisible(visible bool) { s.restartVisible = visible }
