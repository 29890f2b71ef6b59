// voice.go - the fixed two-slot-per-(channel,note) voice pool and active list

package wildtune

// Envelope stages, indexing Sample.EnvRate / Sample.EnvTarget
// (spec.md GLOSSARY).
const (
	EnvAttack1 = 0
	EnvAttack2 = 1
	EnvAttack3 = 2
	EnvSustain = 3
	EnvRelease = 4
	EnvClamped = 5
	EnvFast    = 6 // fast release used for re-triggers
)

const numChannels = 16
const numNotes = 128

// voiceSlot identifies one of the two per-(channel,note) voice slots.
type voiceSlot int

const (
	slot0 voiceSlot = 0
	slot1 voiceSlot = 1
)

// voiceRef is a weak, nullable reference to a voice table entry: a slot
// index plus the (channel, note) it belongs to. It replaces the original
// engine's raw pointer back-reference (spec.md section 9, "Cyclic
// ownership") with an index pair into the pool the Instance owns.
type voiceRef struct {
	valid   bool
	slot    voiceSlot
	channel uint8
	note    uint8
}

// Voice is one playable instance of a triggered note. The DSP loop reads
// Sample, SamplePos, SampleInc, VolLvl, Env, EnvInc, EnvLevel and Modes
// every frame, and writes back SamplePos, Env, EnvLevel, Active, and
// clears Replay when a release completes (spec.md section 6, "Egress to
// renderer").
type Voice struct {
	Active bool
	IsOff  bool // latched note-off pending the end of the attack stage

	NoteID uint16 // (channel<<8)|note

	Patch  *Patch
	Sample *Sample

	SamplePos uint64 // fixed-point cursor, owned by the DSP loop
	SampleInc uint32 // per-frame increment, computed by this core

	Velocity uint8
	VolLvl   int32 // computed 0..1024-ish scale (see volumeKernel)

	Modes uint16 // SampleEnvelope | SampleLoop | SampleSustain | SampleClamped

	Env      int
	EnvInc   int32
	EnvLevel int32

	Hold uint8 // snapshot of channel hold at note-on, plus HoldOff when latched

	Replay voiceRef // the other slot being attacked during a re-trigger

	next    voiceRef // intrusive active-list link
	hasNext bool
	linked  bool // true once this slot has ever been appended to the active list
	slot    voiceSlot
	channel uint8
	note    uint8
}

func (v *Voice) self() voiceRef {
	return voiceRef{valid: true, slot: v.slot, channel: v.channel, note: v.note}
}

// voicePool is the fixed note_table[2][16][128] voice table plus a
// singly-linked active list anchored at the instance (spec.md section 3).
type voicePool struct {
	slots    [2][numChannels][numNotes]Voice
	headSet  bool
	head     voiceRef
	tailSet  bool
	tail     voiceRef
}

func newVoicePool() *voicePool {
	p := &voicePool{}
	for s := range p.slots {
		for ch := 0; ch < numChannels; ch++ {
			for n := 0; n < numNotes; n++ {
				v := &p.slots[s][ch][n]
				v.slot = voiceSlot(s)
				v.channel = uint8(ch)
				v.note = uint8(n)
			}
		}
	}
	return p
}

func (p *voicePool) at(ref voiceRef) *Voice {
	if !ref.valid {
		return nil
	}
	return &p.slots[ref.slot][ref.channel][ref.note]
}

func (p *voicePool) voice(slot voiceSlot, channel, note uint8) *Voice {
	return &p.slots[slot][channel][note]
}

// append inserts a voice onto the tail of the active list. The voice must
// not already be linked in (invariant 1: each active voice exactly once).
func (p *voicePool) append(v *Voice) {
	ref := v.self()
	v.hasNext = false
	v.linked = true
	if !p.headSet {
		p.head = ref
		p.headSet = true
		p.tail = ref
		p.tailSet = true
		return
	}
	tail := p.at(p.tail)
	tail.next = ref
	tail.hasNext = true
	p.tail = ref
}

// forEachActive walks the active list, calling fn on every linked voice.
// fn may mutate the voice in place but must not unlink it mid-walk; use
// compact afterwards to drop inactive voices from the list.
func (p *voicePool) forEachActive(fn func(v *Voice)) {
	if !p.headSet {
		return
	}
	ref := p.head
	for {
		v := p.at(ref)
		fn(v)
		if !v.hasNext {
			return
		}
		ref = v.next
	}
}

// forEachOnChannel walks the active list invoking fn for voices whose
// NoteID addresses the given channel.
func (p *voicePool) forEachOnChannel(channel uint8, fn func(v *Voice)) {
	p.forEachActive(func(v *Voice) {
		if v.NoteID>>8 == uint16(channel) {
			fn(v)
		}
	})
}

// compact rebuilds the active list, dropping any voice whose Active flag
// has been cleared since the last compaction (spec.md invariant 1: "no
// inactive voice is linked"). It is called after handlers that may clear
// Active (All Sound Off) so the list never carries dangling entries.
func (p *voicePool) compact() {
	var newHead, newTail voiceRef
	haveHead, haveTail := false, false

	if p.headSet {
		ref := p.head
		for {
			v := p.at(ref)
			hadNext, next := v.hasNext, v.next
			v.hasNext = false
			v.linked = v.Active
			if v.Active {
				if !haveHead {
					newHead, haveHead = ref, true
					newTail, haveTail = ref, true
				} else {
					tail := p.at(newTail)
					tail.next = ref
					tail.hasNext = true
					newTail = ref
				}
			}
			if !hadNext {
				break
			}
			ref = next
		}
	}

	p.head, p.headSet = newHead, haveHead
	p.tail, p.tailSet = newTail, haveTail
}
