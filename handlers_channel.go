// handlers_channel.go - program change, channel pressure and pitch bend

package wildtune

// doProgramChange handles status 0xC0 (spec.md section 4.E, Program
// Change). On a drum channel the value only selects the drum kit bank;
// the note-on handler resolves the actual drum patch per-note from
// (bank<<8)|note|DrumPatchBit, so Channel.Patch is never touched here.
// Only the melodic branch resolves and assigns a patch.
func doProgramChange(inst *Instance, channel uint8, data uint32) {
	ch := &inst.Channels[channel]
	program := uint8(data)

	if ch.IsDrum {
		ch.Bank = program
		return
	}

	id := PatchID(uint32(ch.Bank)<<8) | PatchID(program)
	inst.loadPatch(id)
	patch, ok := inst.getPatch(id)
	if !ok {
		return
	}
	ch.Patch = patch
}

// doChannelPressure handles status 0xD0: every sounding voice on the
// channel, and each one's replay partner, is re-scaled to the new
// pressure value exactly as polyphonic aftertouch does per-voice (spec.md
// section 4.E, Channel Pressure).
func doChannelPressure(inst *Instance, channel uint8, data uint32) {
	ch := &inst.Channels[channel]
	pressure := uint8(data)
	ch.Pressure = pressure

	curve := inst.Config.volumeCurve()
	inst.Voices.forEachOnChannel(channel, func(v *Voice) {
		if v.Patch == nil {
			return
		}
		v.Velocity = pressure
		v.VolLvl = volumeKernel(curve, ch.Volume, ch.Expression, pressure, v.Patch.Amp)
		if r := inst.Voices.at(v.Replay); r != nil && r.Patch != nil {
			r.Velocity = pressure
			r.VolLvl = volumeKernel(curve, ch.Volume, ch.Expression, pressure, r.Patch.Amp)
		}
	})
}

// doPitchBend handles status 0xE0: data is the raw 14-bit bend value
// (0..16383, centre 8192), already assembled by the dispatcher from the
// two 7-bit wire bytes; subtracting 8192 gives Channel.Pitch. Every sounding voice on the channel has its
// SampleInc recomputed from the new PitchAdjust (spec.md section 4.E,
// Pitch Bend).
func doPitchBend(inst *Instance, channel uint8, data uint32) {
	ch := &inst.Channels[channel]
	ch.Pitch = int16(int32(data) - 8192)
	ch.PitchAdjust = pitchAdjustFromBend(ch.PitchRange, ch.Pitch)

	inst.Voices.forEachOnChannel(channel, func(v *Voice) {
		if v.Sample == nil || v.Patch == nil {
			return
		}
		v.SampleInc = sampleInc(uint8(v.NoteID), v.Patch.Note, ch.PitchAdjust, inst.Config.SampleRate, v.Sample.IncDiv)
	})
}
