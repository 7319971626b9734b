package testutil

import "github.com/udisondev/lanewars/internal/model"

// EffectRecorder collects effect events emitted by the engine.
type EffectRecorder struct {
	Events []model.EffectEvent
}

// Sink returns an EffectSink appending to the recorder.
func (r *EffectRecorder) Sink() model.EffectSink {
	return func(ev model.EffectEvent) {
		r.Events = append(r.Events, ev)
	}
}

// Count returns the number of recorded events of the given kind.
func (r *EffectRecorder) Count(kind model.EffectEventKind) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent event of the given kind.
func (r *EffectRecorder) Last(kind model.EffectEventKind) (model.EffectEvent, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Kind == kind {
			return r.Events[i], true
		}
	}
	return model.EffectEvent{}, false
}
