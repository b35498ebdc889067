package testutil

import (
	"errors"
)

// ScriptedRandom returns pre-recorded values from Intn, in order.
// Each value is reduced modulo n so scripts stay valid for any range.
// Once the script runs out it keeps returning zero.
type ScriptedRandom struct {
	Values []int
	Calls  []int
	pos    int
}

// NewScriptedRandom creates a ScriptedRandom playing back values
func NewScriptedRandom(values ...int) *ScriptedRandom {
	return &ScriptedRandom{Values: values}
}

// Intn records n and returns the next scripted value
func (r *ScriptedRandom) Intn(n int) int {
	r.Calls = append(r.Calls, n)

	if r.pos >= len(r.Values) {
		return 0
	}
	v := r.Values[r.pos] % n
	r.pos++
	return v
}

// ErrMockWrite is returned by FailingWriter
var ErrMockWrite = errors.New("mock write failure")

// FailingWriter accepts Limit bytes and then fails every write
type FailingWriter struct {
	Limit   int
	Written []byte
}

// Write implements io.Writer
func (w *FailingWriter) Write(p []byte) (int, error) {
	room := w.Limit - len(w.Written)
	if room <= 0 {
		return 0, ErrMockWrite
	}
	if len(p) > room {
		w.Written = append(w.Written, p[:room]...)
		return room, ErrMockWrite
	}
	w.Written = append(w.Written, p...)
	return len(p), nil
}
