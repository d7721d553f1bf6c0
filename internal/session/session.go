// =============================================================================
// Bolle Export - Preview Session
// =============================================================================
//
// This module holds the state of one editable preview: the generated base
// text, the user-edited text and the last saved text. The UI layer owns the
// Session object and passes it into pure core functions; the core itself
// keeps no state between calls.
//
// IDEMPOTENT RECOMPUTATION:
//   Re-running the pipeline on unchanged input produces byte-identical
//   output, so Load can compare the freshly generated text against the
//   current base to decide whether the source data actually changed. Only a
//   changed base discards in-progress edits.
//
// =============================================================================

package session

// Session is the mutable state of one editable preview.
type Session struct {
	base     string
	edited   string
	saved    string
	hasSaved bool
}

// New creates an empty session.
func New() *Session {
	return &Session{}
}

// Load installs freshly generated text as the base.
//
// RETURNS:
//   - true when the base changed and pending edits were discarded, false
//     when the generated text matches the current base and edits survive.
func (s *Session) Load(generated string) bool {
	if generated == s.base {
		return false
	}
	s.base = generated
	s.edited = generated
	return true
}

// Edit replaces the current edited text.
func (s *Session) Edit(text string) {
	s.edited = text
}

// Text returns the current preview text (edited, falling back to base).
func (s *Session) Text() string {
	return s.edited
}

// Base returns the last generated base text.
func (s *Session) Base() string {
	return s.base
}

// Dirty reports whether the preview differs from the generated base.
func (s *Session) Dirty() bool {
	return s.edited != s.base
}

// Revert discards edits, restoring the preview to the generated base.
func (s *Session) Revert() {
	s.edited = s.base
}

// Save marks the current edited text as the authoritative output.
func (s *Session) Save() {
	s.saved = s.edited
	s.hasSaved = true
}

// Saved returns the authoritative output, if one was saved.
func (s *Session) Saved() (string, bool) {
	return s.saved, s.hasSaved
}

// Reset discards all state, including the base, forcing a new generation.
func (s *Session) Reset() {
	*s = Session{}
}
