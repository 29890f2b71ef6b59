// patch.go - patch/sample collaborator contracts and the shared patch registry

package wildtune

import "sync"

// PatchID identifies a patch the way the original engine packs it: for a
// melodic patch, (bank<<8)|program; for a drum patch, (bank<<8)|note|0x80.
type PatchID uint32

// DrumPatchBit marks a PatchID as addressing the drum namespace.
const DrumPatchBit PatchID = 0x80

// Patch is an opaque reference to a loaded instrument definition. Decoding
// and loading patch data is the patch loader's job (spec.md section 1,
// "deliberately out of scope"); the core only needs the few fields it
// reads directly.
type Patch struct {
	ID PatchID

	// Note pins this patch to a fixed MIDI note (drum patches commonly do
	// this); 0 means "use the note that was actually played".
	Note uint8

	// Amp is a percentage amplitude trim applied on top of the computed
	// channel/expression/velocity volume (spec.md section 4.B).
	Amp int32

	// Samples is consulted by the collaborator's GetSample implementation;
	// the core never indexes it directly.
	Samples []*Sample
}

// Sample is an opaque reference to a loaded PCM sample plus its envelope
// and looping metadata. Sample data itself, and its decoding, belong to
// the patch loader.
type Sample struct {
	// IncDiv scales the computed phase increment (spec.md section 4.A).
	IncDiv uint32

	// Modes is the bitfield copied into a newly triggered Voice.Modes.
	Modes uint16

	// EnvRate and EnvTarget are indexed by envelope stage 0..6
	// (spec.md GLOSSARY: "Envelope stage").
	EnvRate   [7]int32
	EnvTarget [7]int32
}

// Sample mode bits, copied onto a Voice at note-on.
const (
	SampleEnvelope uint16 = 1 << iota
	SampleLoop
	SampleSustain
	SampleClamped
)

// PatchSource is the collaborator contract for resolving and loading
// patches and samples (spec.md section 6). The patch loader and sample
// decoder live outside this module's scope.
type PatchSource interface {
	// GetPatch resolves a previously loaded patch by id.
	GetPatch(id PatchID) (*Patch, bool)
	// GetSample resolves the sample within a patch nearest freqDiv100
	// (a frequency expressed as Hz*100, matching the original engine's
	// sample-selection key).
	GetSample(p *Patch, freqDiv100 uint32) (*Sample, bool)
	// LoadPatch installs a patch into the instance's patch set. The core
	// itself bumps the shared patch registry's reference count, under its
	// mutex, after a successful load.
	LoadPatch(id PatchID) error
}

// patchRegistry is the cross-instance, process-wide reference-counted
// patch table (spec.md section 5: "Shared mutable state: the patch
// registry"). It is guarded by a single mutex acquired only at patch
// resolve and instance-free boundaries; handlers never touch it directly.
type patchRegistry struct {
	mu    sync.Mutex
	count map[PatchID]int
}

var globalPatchRegistry = &patchRegistry{count: make(map[PatchID]int)}

// retain increments the process-wide reference count for id.
func (r *patchRegistry) retain(id PatchID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count[id]++
}

// release decrements the process-wide reference count for id, removing
// the entry once it reaches zero.
func (r *patchRegistry) release(id PatchID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count[id] <= 1 {
		delete(r.count, id)
		return
	}
	r.count[id]--
}
