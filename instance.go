// instance.go - the synthesis instance: owns channel state, voices, the
// event stream and the copyright string (spec.md section 3, "the mdi")

package wildtune

import (
	"log"
	"os"

	"github.com/google/uuid"
)

// Info mirrors the renderer-visible transport/progress fields the
// original engine keeps alongside channel and voice state (spec.md
// section 3 supplement in SPEC_FULL.md).
type Info struct {
	CurrentSample        uint64
	ApproxTotalSamples   uint64
	TotalMIDITime        uint64
}

// Instance is one single-threaded synthesis actor (spec.md section 5).
// It owns its channels, voice pool, event stream and copyright string;
// the mix buffer and reverb context are owned by the external renderer.
type Instance struct {
	ID uuid.UUID

	Config  MixerConfig
	Patches PatchSource

	Channels [numChannels]Channel
	Voices   *voicePool
	Stream   *eventStream

	Copyright string
	Info      Info

	loadedPatches map[PatchID]struct{}

	logger *log.Logger
}

// Init allocates a new instance and performs the same startup sequence as
// the original engine's _WM_initMDI: seed the event stream with one
// coalescable sentinel, then run a full GM/GS reset (SPEC_FULL.md section
// 4.I).
func Init(cfg MixerConfig, patches PatchSource) *Instance {
	inst := &Instance{
		ID:            uuid.New(),
		Config:        cfg,
		Patches:       patches,
		Voices:        newVoicePool(),
		Stream:        newEventStream(),
		loadedPatches: make(map[PatchID]struct{}),
		logger:        log.New(os.Stderr, "wildtune: ", log.LstdFlags),
	}
	inst.loadPatch(0x0000)
	inst.rolandReset()
	return inst
}

// ResetToStart rewinds the play cursor and sample counters and performs a
// GM reset (spec.md section 4.H).
func (inst *Instance) ResetToStart() {
	inst.Stream.resetCursor()
	inst.Info.CurrentSample = 0
	inst.rolandReset()
}

// Free releases the instance's reference-counted patches (spec.md
// section 5: "acquired only at patch reference-counting boundaries...
// decrementing on instance free"). Everything else the instance owns is
// reclaimed by the Go garbage collector.
func Free(inst *Instance) {
	for id := range inst.loadedPatches {
		globalPatchRegistry.release(id)
	}
	inst.loadedPatches = nil
}

// loadPatch resolves id through the patch-loader collaborator and bumps
// the process-wide refcount exactly once per instance per patch id.
func (inst *Instance) loadPatch(id PatchID) {
	if inst.Patches == nil {
		return
	}
	if _, ok := inst.loadedPatches[id]; ok {
		return
	}
	if err := inst.Patches.LoadPatch(id); err != nil {
		return
	}
	globalPatchRegistry.retain(id)
	inst.loadedPatches[id] = struct{}{}
}

func (inst *Instance) getPatch(id PatchID) (*Patch, bool) {
	if inst.Patches == nil {
		return nil, false
	}
	return inst.Patches.GetPatch(id)
}

func (inst *Instance) getSample(p *Patch, freqDiv100 uint32) (*Sample, bool) {
	if inst.Patches == nil || p == nil {
		return nil, false
	}
	return inst.Patches.GetSample(p, freqDiv100)
}

// logCorrupt records the one user-visible diagnostic this core ever
// raises (spec.md section 7), tagged with the instance id so a host
// running several instances can tell which one failed.
func (inst *Instance) logCorrupt(context string) {
	inst.logger.Printf("instance=%s CORRUPT: %s", inst.ID, context)
}
