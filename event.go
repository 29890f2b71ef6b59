// event.go - the append-only, coalescing event-stream builder

package wildtune

// eventHandler is a reference to the function that replays one recorded
// event against an Instance's channel/voice state (spec.md section 4.G,
// "Handler dispatch via function reference").
type eventHandler func(inst *Instance, channel uint8, data uint32)

// event is one time-stamped record in the stream. A record with handler
// == nil is a coalescable sentinel: the next builder call may overwrite
// it in place instead of appending a new row, preserving SamplesToNext
// (spec.md section 3, "Event stream").
type event struct {
	handler       eventHandler
	channel       uint8
	data          uint32
	samplesToNext uint32
}

const eventChunkSize = 256

// eventStream is the dynamic, append-only buffer of decoded events.
type eventStream struct {
	events  []event
	current int // index of the next event to be replayed
}

func newEventStream() *eventStream {
	s := &eventStream{events: make([]event, 0, eventChunkSize)}
	s.events = append(s.events, event{})
	return s
}

// record either coalesces with the tail sentinel or appends a fresh
// event. Returns the index of the record that was written.
func (s *eventStream) record(h eventHandler, channel uint8, data uint32) int {
	if n := len(s.events); n > 0 && s.events[n-1].handler == nil {
		s.events[n-1].handler = h
		s.events[n-1].channel = channel
		s.events[n-1].data = data
		return n - 1
	}
	s.events = append(s.events, event{handler: h, channel: channel, data: data})
	return len(s.events) - 1
}

// resetCursor rewinds replay to the first event (spec.md section 4.H,
// Reset-to-start).
func (s *eventStream) resetCursor() {
	s.current = 0
}

// len reports how many events have been recorded, used to check the
// dispatcher totality property (spec.md section 8, invariant 6).
func (s *eventStream) len() int {
	return len(s.events)
}
