package ideas

import "sync/atomic"

// Session ties an in-flight suggestion request to the form that asked
// for it. Opening a new form (or closing the current one) invalidates
// any request still outstanding, so a late response is discarded
// instead of landing in a form it wasn't asked from.
type Session struct {
	seq atomic.Uint64
}

// Begin invalidates any outstanding request and returns the token for a
// new one.
func (s *Session) Begin() uint64 {
	return s.seq.Add(1)
}

// Invalidate discards all outstanding requests without starting one.
func (s *Session) Invalidate() {
	s.seq.Add(1)
}

// Current reports whether token still identifies the open session.
func (s *Session) Current(token uint64) bool {
	return s.seq.Load() == token
}
