package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/exporterrormusic/kingdom-arena/event"
)

const sampleRate = beep.SampleRate(44100)

// Engine plays synthesized combat cues through the system speaker
// It is fed from the world's event tap and must never block the tick:
// speaker.Play queues asynchronously and failures degrade to silence
type Engine struct {
	running atomic.Bool
	muted   atomic.Bool

	// Per-cue throttle, cue spam on dense ticks is pointless
	lastPlayed [cueCount]atomic.Int64

	volume float64
}

// NewEngine initializes the speaker; on failure the engine stays in
// silent mode and every Play is a no-op
func NewEngine(enabled bool) *Engine {
	e := &Engine{volume: 1.0}
	e.muted.Store(!enabled)

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return e // Silent mode
	}
	e.running.Store(true)
	return e
}

// ToggleMute flips mute state; returns true if now audible
func (e *Engine) ToggleMute() bool {
	muted := !e.muted.Load()
	e.muted.Store(muted)
	return !muted
}

// Play queues one cue, throttled to one instance per cue per 50ms
func (e *Engine) Play(ct CueType) {
	if !e.running.Load() || e.muted.Load() {
		return
	}
	if ct < 0 || ct >= cueCount {
		return
	}

	now := time.Now().UnixNano()
	last := e.lastPlayed[ct].Load()
	if now-last < int64(50*time.Millisecond) {
		return
	}
	if !e.lastPlayed[ct].CompareAndSwap(last, now) {
		return
	}

	if s := makeCue(ct, sampleRate, e.volume); s != nil {
		speaker.Play(s)
	}
}

// HandleEvent maps simulation events to cues; wired as (part of) the
// world's event tap
func (e *Engine) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventBulletFireRequest:
		e.Play(CueFire)
	case event.EventKill:
		e.Play(CueKill)
	case event.EventExplosionStarted:
		e.Play(CueExplosion)
	case event.EventPlayerHit:
		e.Play(CuePlayerHit)
	case event.EventWaveAdvance:
		e.Play(CueWaveAdvance)
	case event.EventMeleeSweepRequest:
		e.Play(CueMelee)
	}
}

// Close releases the speaker
func (e *Engine) Close() {
	if e.running.CompareAndSwap(true, false) {
		speaker.Close()
	}
}
