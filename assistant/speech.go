package assistant

import (
	"sync"

	"github.com/hearthdash/hearth/errors"
)

// SpeechState is the listening state machine's position.
type SpeechState int

const (
	SpeechIdle SpeechState = iota
	SpeechListening
)

// Recognizer is the capability interface over a one-shot speech recognition
// facility (non-continuous, no interim results). Implementations deliver at
// most one result callback followed by end.
type Recognizer interface {
	// Start begins a single recognition attempt, reporting through events.
	Start(events RecognizerEvents) error
	// Stop cancels any in-progress recognition.
	Stop()
}

// RecognizerEvents receives recognition callbacks.
type RecognizerEvents struct {
	// OnResult delivers the single best transcript.
	OnResult func(transcript string)
	// OnError reports a recognition failure.
	OnError func(err error)
	// OnEnd signals natural end-of-utterance.
	OnEnd func()
}

// SpeechInput feeds recognized text into the pending chat message. It never
// auto-submits; the transcript only populates the input field.
type SpeechInput struct {
	mu         sync.Mutex
	state      SpeechState
	generation int

	rec     Recognizer
	setText func(string)
	notify  func(err error)
}

// NewSpeechInput creates the controller. rec may be nil when the platform has
// no recognition capability; Start then surfaces SpeechUnsupported. setText
// populates the pending input; notify (optional) surfaces transient
// recognition errors.
func NewSpeechInput(rec Recognizer, setText func(string), notify func(err error)) *SpeechInput {
	if setText == nil {
		setText = func(string) {}
	}
	if notify == nil {
		notify = func(error) {}
	}
	return &SpeechInput{rec: rec, setText: setText, notify: notify}
}

// State returns the current listening state.
func (s *SpeechInput) State() SpeechState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Listening reports whether recognition is in progress.
func (s *SpeechInput) Listening() bool {
	return s.State() == SpeechListening
}

// Supported reports whether the platform offers recognition at all.
func (s *SpeechInput) Supported() bool {
	return s.rec != nil
}

// Start begins listening. Without a recognizer it surfaces SpeechUnsupported
// and stays Idle. Starting while already listening is a no-op.
func (s *SpeechInput) Start() error {
	s.mu.Lock()
	if s.rec == nil {
		s.mu.Unlock()
		return errors.SpeechUnsupported()
	}
	if s.state == SpeechListening {
		s.mu.Unlock()
		return nil
	}
	s.state = SpeechListening
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	return s.rec.Start(RecognizerEvents{
		OnResult: func(transcript string) {
			if s.finish(gen) {
				s.setText(transcript)
			}
		},
		OnError: func(err error) {
			if s.finish(gen) {
				s.notify(err)
			}
		},
		OnEnd: func() {
			s.finish(gen)
		},
	})
}

// Stop cancels recognition immediately, discarding any in-progress result.
func (s *SpeechInput) Stop() {
	s.mu.Lock()
	if s.state != SpeechListening {
		s.mu.Unlock()
		return
	}
	s.state = SpeechIdle
	// Bump the generation so late callbacks from the cancelled attempt are
	// ignored rather than repopulating the input.
	s.generation++
	s.mu.Unlock()

	s.rec.Stop()
}

// finish transitions Listening→Idle for the given attempt. It returns false
// when the attempt was already superseded by Stop or a prior callback.
func (s *SpeechInput) finish(gen int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen || s.state != SpeechListening {
		return false
	}
	s.state = SpeechIdle
	return true
}
