// handlers_note.go - note-on, note-off and polyphonic aftertouch handlers

package wildtune

// doNoteOn implements spec.md section 4.C. data packs (note<<8)|velocity.
func doNoteOn(inst *Instance, channel uint8, data uint32) {
	note := uint8(data >> 8)
	velocity := uint8(data)

	if velocity == 0 {
		doNoteOff(inst, channel, data)
		return
	}

	ch := &inst.Channels[channel]

	var patch *Patch
	var seedFreq uint32
	if !ch.IsDrum {
		patch = ch.Patch
		if patch == nil {
			return
		}
		seedFreq = seedFrequency(note, patch.Note)
	} else {
		id := PatchID(uint32(ch.Bank)<<8) | PatchID(note) | DrumPatchBit
		var ok bool
		patch, ok = inst.getPatch(id)
		if !ok {
			return
		}
		seedFreq = seedFrequency(note, patch.Note)
	}

	sample, ok := inst.getSample(patch, seedFreq/100)
	if !ok {
		return
	}

	target := arbitrateNoteOn(inst, channel, note)
	if target == nil {
		return
	}

	target.NoteID = uint16(channel)<<8 | uint16(note)
	target.Patch = patch
	target.Sample = sample
	target.SamplePos = 0
	target.SampleInc = sampleInc(note, patch.Note, ch.PitchAdjust, inst.Config.SampleRate, sample.IncDiv)
	target.Velocity = velocity
	target.Env = EnvAttack1
	target.EnvInc = sample.EnvRate[EnvAttack1]
	target.EnvLevel = 0
	target.Modes = sample.Modes
	target.Hold = ch.Hold
	target.VolLvl = volumeKernel(inst.Config.volumeCurve(), ch.Volume, ch.Expression, velocity, patch.Amp)
	target.Replay = voiceRef{}
	target.IsOff = false
}

// arbitrateNoteOn runs the re-trigger arbitration against slot 0 of
// (channel, note), then slot 1, and returns the voice the new note-on
// should initialize, or nil if the note-on must be dropped (spec.md
// section 4.C, step 4; ordering guarantee in section 5: "Re-trigger
// arbitration against slot 0 always occurs before slot 1").
func arbitrateNoteOn(inst *Instance, channel, note uint8) *Voice {
	s0 := inst.Voices.voice(slot0, channel, note)
	s1 := inst.Voices.voice(slot1, channel, note)

	var target *Voice
	switch {
	case s0.Active:
		if envelopeGuarded(s0) {
			return nil
		}
		releaseForReplay(s0, s1)
		target = s1
	case s1.Active:
		if envelopeGuarded(s1) {
			return nil
		}
		releaseForReplay(s1, s0)
		target = s0
	default:
		target = s0
	}

	if !target.linked {
		inst.Voices.append(target)
	}
	target.Active = true
	return target
}

// envelopeGuarded reports whether v is still in its guarded attack phase
// and must not be re-triggered yet (spec.md section 4.C, step 4).
func envelopeGuarded(v *Voice) bool {
	return v.Modes&SampleEnvelope != 0 && v.Env < EnvSustain && v.Hold&HoldOff == 0
}

// releaseForReplay puts from into a fast release and links it to to,
// which is about to become the new attack target.
func releaseForReplay(from, to *Voice) {
	from.Replay = to.self()
	from.Env = EnvFast
	from.EnvInc = -from.Sample.EnvRate[EnvFast]
}

// doNoteOff implements spec.md section 4.D.
func doNoteOff(inst *Instance, channel uint8, data uint32) {
	note := uint8(data >> 8)

	v := inst.Voices.voice(slot0, channel, note)
	if !v.Active {
		v = inst.Voices.voice(slot1, channel, note)
	}
	if !v.Active {
		return
	}

	ch := &inst.Channels[channel]
	if ch.IsDrum && v.Modes&SampleLoop == 0 {
		return
	}

	if v.Env == EnvAttack1 {
		v.IsOff = true
		return
	}
	releaseVoice(v, ch.Hold)
}

// releaseVoice runs the release-stage-selection algorithm of spec.md
// section 4.D, deferring to HoldOff when the channel's hold pedal is
// currently depressed (checked against the live channel state, not the
// voice's note-on-time snapshot).
func releaseVoice(v *Voice, channelHold uint8) {
	v.IsOff = false

	if channelHold&HoldPedal != 0 {
		v.Hold |= HoldOff
		return
	}
	applyReleaseStage(v)
}

// applyReleaseStage performs the actual stage transition, used both for
// an immediate release and for a deferred release when the hold pedal
// lifts (spec.md section 4.D and section 4.E, CC 64).
func applyReleaseStage(v *Voice) {
	switch {
	case v.Modes&SampleEnvelope == 0:
		if v.Modes&SampleLoop != 0 {
			v.Modes ^= SampleLoop
		}
		v.EnvInc = 0
	case v.Modes&SampleClamped != 0:
		if v.Env < EnvClamped {
			v.Env = EnvClamped
			v.EnvInc = directedRate(v, EnvClamped)
		}
	case v.Modes&SampleSustain != 0:
		if v.Env < EnvSustain {
			v.Env = EnvSustain
			v.EnvInc = directedRate(v, EnvSustain)
		}
	default:
		if v.Env < EnvRelease {
			v.Env = EnvRelease
			v.EnvInc = directedRate(v, EnvRelease)
		}
	}
}

// directedRate returns the envelope rate for stage, signed so the
// envelope moves toward the stage's target from the voice's current
// level (spec.md section 4.D).
func directedRate(v *Voice, stage int) int32 {
	rate := v.Sample.EnvRate[stage]
	if v.EnvLevel > v.Sample.EnvTarget[stage] {
		return -rate
	}
	return rate
}

// doAftertouch implements spec.md section 4.E, Polyphonic Aftertouch.
func doAftertouch(inst *Instance, channel uint8, data uint32) {
	note := uint8(data >> 8)
	pressure := uint8(data)

	v := inst.Voices.voice(slot0, channel, note)
	if !v.Active {
		v = inst.Voices.voice(slot1, channel, note)
		if !v.Active {
			return
		}
	}

	ch := &inst.Channels[channel]
	v.Velocity = pressure
	v.VolLvl = volumeKernel(inst.Config.volumeCurve(), ch.Volume, ch.Expression, pressure, v.Patch.Amp)

	if r := inst.Voices.at(v.Replay); r != nil {
		r.Velocity = pressure
		r.VolLvl = volumeKernel(inst.Config.volumeCurve(), ch.Volume, ch.Expression, pressure, r.Patch.Amp)
	}
}
