package dnd

// MediaType keys a payload slot on a Session. Sources and targets agree on
// media types, never on concrete Go types.
type MediaType string

// TextPlain is the only media type the board currently exchanges. The value
// is an item id.
const TextPlain MediaType = "text/plain"

// Effect describes what completing a drop means for the source.
type Effect string

// EffectMove asks the source's owner to relocate the payload rather than
// copy it.
const EffectMove Effect = "move"

// Session carries state for one drag gesture, from DragStart to DragEnd.
// One payload slot exists per media type; setting a slot twice overwrites it.
type Session struct {
	payload map[MediaType]string
	effect  Effect
}

// NewSession returns an empty session with no payload and no effect.
func NewSession() *Session {
	return &Session{payload: make(map[MediaType]string)}
}

// SetData stores value under the given media type, replacing any previous
// value for that type.
func (s *Session) SetData(mt MediaType, value string) {
	s.payload[mt] = value
}

// Data returns the payload stored under the given media type, and whether a
// slot for it was ever set.
func (s *Session) Data(mt MediaType) (string, bool) {
	v, ok := s.payload[mt]
	return v, ok
}

// SetEffect records the effect the source intends for this drag.
func (s *Session) SetEffect(e Effect) {
	s.effect = e
}

// Effect returns the effect recorded for this drag, or "" if none was set.
func (s *Session) Effect() Effect {
	return s.effect
}

// Draggable is anything a drag gesture can start from.
type Draggable interface {
	// DragStart primes the session with the source's payload and effect.
	DragStart(s *Session)
	// DragEnd tells the source the gesture finished, whether or not a drop
	// landed anywhere.
	DragEnd(s *Session)
}

// Droppable is anything a drag gesture can land on. Targets move between two
// states: idle and highlighted. DragOver reporting true puts the target in
// the highlighted state; DragLeave and Drop both return it to idle.
type Droppable interface {
	// DragOver reports whether the target accepts the session's payload.
	// Called repeatedly while the pointer is over the target.
	DragOver(s *Session) bool
	// Drop completes the gesture on this target.
	Drop(s *Session)
	// DragLeave clears any highlight after the pointer moves off the target
	// without dropping.
	DragLeave(s *Session)
}
