// patchsource_test.go - an in-memory PatchSource test double

package wildtune

// testPatches is a minimal in-memory PatchSource: every patch id loads
// immediately and maps to a single, deliberately simple sample, so
// handler tests can focus on channel/voice bookkeeping rather than
// patch resolution.
type testPatches struct {
	patches map[PatchID]*Patch
}

func newTestPatches() *testPatches {
	return &testPatches{patches: make(map[PatchID]*Patch)}
}

func (p *testPatches) withPatch(id PatchID, patch *Patch) *testPatches {
	p.patches[id] = patch
	return p
}

func (p *testPatches) LoadPatch(id PatchID) error {
	if _, ok := p.patches[id]; !ok {
		p.patches[id] = &Patch{ID: id, Amp: 100, Samples: []*Sample{defaultTestSample()}}
	}
	return nil
}

func (p *testPatches) GetPatch(id PatchID) (*Patch, bool) {
	patch, ok := p.patches[id]
	return patch, ok
}

func (p *testPatches) GetSample(patch *Patch, freqDiv100 uint32) (*Sample, bool) {
	if patch == nil || len(patch.Samples) == 0 {
		return nil, false
	}
	return patch.Samples[0], true
}

// defaultTestSample is an enveloped, unlooped, unsustained, unclamped
// sample with deliberately small, distinct envelope rates so tests can
// step the envelope deterministically without a real DSP loop.
func defaultTestSample() *Sample {
	return &Sample{
		IncDiv: 1,
		Modes:  SampleEnvelope,
		EnvRate: [7]int32{
			1000, 1000, 1000, // attack 1..3
			0,    // sustain-entry, never moves on its own
			500,  // release
			2000, // clamped
			4000, // fast (re-trigger)
		},
		EnvTarget: [7]int32{
			500000, 1000000, 4194303,
			4194303, 0, 0, 0,
		},
	}
}

func newTestInstance() *Instance {
	patches := newTestPatches().withPatch(0, &Patch{ID: 0, Amp: 100})
	return Init(DefaultMixerConfig(), patches)
}
