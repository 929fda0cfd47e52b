package core

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// FrameID identifies a requested frame; zero means none.
type FrameID uint64

// Scheduler is what the game loop is built on: a next-frame hook, its
// cancellation, and a one-shot delayed callback.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
	After(d time.Duration, fn func()) (cancel func())
}

// EventLoop runs every callback on the goroutine that called Run, so game
// state needs no locking. Frames fire on a fixed ticker.
type EventLoop struct {
	interval time.Duration
	events   chan func()
	done     chan struct{}

	mu     sync.Mutex
	nextID FrameID
	frames map[FrameID]func()
	order  []FrameID
}

func NewEventLoop(frameRate int) *EventLoop {
	if frameRate <= 0 {
		frameRate = 60
	}
	return &EventLoop{
		interval: time.Second / time.Duration(frameRate),
		events:   make(chan func(), 64),
		done:     make(chan struct{}),
		frames:   make(map[FrameID]func()),
	}
}

// Post hands fn to the loop goroutine. Safe from any goroutine; dropped once the loop has stopped.
func (l *EventLoop) Post(fn func()) {
	select {
	case l.events <- fn:
	case <-l.done:
	}
}

func (l *EventLoop) RequestFrame(fn func()) FrameID {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	l.frames[l.nextID] = fn
	l.order = append(l.order, l.nextID)
	return l.nextID
}

func (l *EventLoop) CancelFrame(id FrameID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.frames, id)
}

func (l *EventLoop) After(d time.Duration, fn func()) func() {
	var cancelled int32
	t := time.AfterFunc(d, func() {
		l.Post(func() {
			//取消後才送達的也不執行
			if atomic.LoadInt32(&cancelled) == 0 {
				fn()
			}
		})
	})
	return func() {
		atomic.StoreInt32(&cancelled, 1)
		t.Stop()
	}
}

// Run processes posted events and frames until ctx is done.
func (l *EventLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.events:
			fn()
		case <-ticker.C:
			l.runFrames()
		}
	}
}

// runFrames runs the frames requested before this tick; frames requested
// by those callbacks wait for the next one.
func (l *EventLoop) runFrames() {
	l.mu.Lock()
	order := l.order
	l.order = nil
	l.mu.Unlock()

	for _, id := range order {
		l.mu.Lock()
		fn, ok := l.frames[id]
		delete(l.frames, id)
		l.mu.Unlock()
		if ok {
			fn()
		}
	}
}
