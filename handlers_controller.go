// handlers_controller.go - control-change dispatch table (spec.md section 4.E)

package wildtune

// doBankSelect handles CC 0. The new bank takes effect on the next
// program change; it does not by itself resolve a patch.
func doBankSelect(inst *Instance, channel uint8, data uint32) {
	inst.Channels[channel].Bank = uint8(data)
}

// recomputeVolumes recomputes VolLvl for every voice on channel, including
// each voice's replay partner, after a controller change affects the
// volume kernel's inputs (spec.md section 4.B).
func recomputeVolumes(inst *Instance, channel uint8) {
	ch := &inst.Channels[channel]
	curve := inst.Config.volumeCurve()
	inst.Voices.forEachOnChannel(channel, func(v *Voice) {
		if v.Patch == nil {
			return
		}
		v.VolLvl = volumeKernel(curve, ch.Volume, ch.Expression, v.Velocity, v.Patch.Amp)
		if r := inst.Voices.at(v.Replay); r != nil && r.Patch != nil {
			r.VolLvl = volumeKernel(curve, ch.Volume, ch.Expression, r.Velocity, r.Patch.Amp)
		}
	})
}

// doChannelVolume handles CC 7.
func doChannelVolume(inst *Instance, channel uint8, data uint32) {
	inst.Channels[channel].Volume = uint8(data)
	recomputeVolumes(inst, channel)
}

// doExpression handles CC 11.
func doExpression(inst *Instance, channel uint8, data uint32) {
	inst.Channels[channel].Expression = uint8(data)
	recomputeVolumes(inst, channel)
}

// recomputePan recomputes a channel's LeftAdjust/RightAdjust from its
// current pan and balance (spec.md section 4.B).
func recomputePan(inst *Instance, channel uint8) {
	ch := &inst.Channels[channel]
	ch.LeftAdjust, ch.RightAdjust = panAdjust(ch.Pan, ch.Balance, inst.Config.MasterVolume)
}

// doBalance handles CC 8. data is a raw 0..127 controller value, centered
// the same way the original engine centers pan: value-64.
func doBalance(inst *Instance, channel uint8, data uint32) {
	inst.Channels[channel].Balance = int16(data) - 64
	recomputePan(inst, channel)
}

// doPan handles CC 10.
func doPan(inst *Instance, channel uint8, data uint32) {
	inst.Channels[channel].Pan = int16(data) - 64
	recomputePan(inst, channel)
}

// finalizeHoldRelease runs the reduced release-stage selection the
// original engine applies only when a latched HoldOff voice's pedal
// finally lifts: clamped samples move to the clamped stage, every other
// enveloped sample moves straight to the release stage (sustain is not
// re-entered here, unlike a direct note-off), and non-enveloped samples
// simply drop their loop bit and stop moving (spec.md section 4.E, CC
// 64).
func finalizeHoldRelease(v *Voice) {
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
	default:
		if v.Env < EnvRelease {
			v.Env = EnvRelease
			v.EnvInc = directedRate(v, EnvRelease)
		}
	}
}

// doHoldPedal handles CC 64. Pressing latches HoldPedal on the channel.
// Releasing clears the channel's hold and the hold of every voice on the
// channel, running
// finalizeHoldRelease for any that were latched with HoldOff while the
// pedal was down (spec.md section 4.E, CC 64).
func doHoldPedal(inst *Instance, channel uint8, data uint32) {
	ch := &inst.Channels[channel]

	if data > 63 {
		ch.Hold |= HoldPedal
		return
	}

	ch.Hold = 0
	inst.Voices.forEachOnChannel(channel, func(v *Voice) {
		if v.Hold&HoldOff != 0 {
			finalizeHoldRelease(v)
		}
		v.Hold = 0
	})
}

// doDataEntryMSB and doDataEntryLSB handle CC 6 and CC 38. Only RPN 0
// (pitch-bend range) is serviced; any other RPN, and every NRPN, only
// updates the register value without effect (spec.md section 9, open
// question: "RPN/NRPN coverage"). Each half of the 14-bit range value
// preserves the other half already stored, matching the original
// engine's course/fine split exactly.
func doDataEntryMSB(inst *Instance, channel uint8, data uint32) {
	ch := &inst.Channels[channel]
	if !ch.pitchBendRangeSelected() {
		return
	}
	fraction := ch.PitchRange % 100
	ch.PitchRange = int(uint8(data))*100 + fraction
}

func doDataEntryLSB(inst *Instance, channel uint8, data uint32) {
	ch := &inst.Channels[channel]
	if !ch.pitchBendRangeSelected() {
		return
	}
	whole := ch.PitchRange / 100
	ch.PitchRange = whole*100 + int(uint8(data))
}

// doDataIncrement and doDataDecrement handle CC 96/97: when RPN 0 is
// selected they nudge PitchRange by one cent, saturating at the 14-bit
// bounds (spec.md section 4.E).
func doDataIncrement(inst *Instance, channel uint8, data uint32) {
	ch := &inst.Channels[channel]
	if !ch.pitchBendRangeSelected() {
		return
	}
	if ch.PitchRange < maxPitchRange {
		ch.PitchRange++
	}
}

func doDataDecrement(inst *Instance, channel uint8, data uint32) {
	ch := &inst.Channels[channel]
	if !ch.pitchBendRangeSelected() {
		return
	}
	if ch.PitchRange > minPitchRange {
		ch.PitchRange--
	}
}

// doNRPNLSB and doNRPNMSB handle CC 98/99: they select the NRPN register
// and mark it non-RPN so data entry no-ops.
func doNRPNLSB(inst *Instance, channel uint8, data uint32) {
	ch := &inst.Channels[channel]
	ch.RegData = (ch.RegData & 0x3F80) | uint16(data)&0x7F
	ch.RegNon = true
}

func doNRPNMSB(inst *Instance, channel uint8, data uint32) {
	ch := &inst.Channels[channel]
	ch.RegData = (ch.RegData & 0x007F) | (uint16(data)&0x7F)<<7
	ch.RegNon = true
}

// doRPNLSB and doRPNMSB handle CC 100/101: they select the RPN register.
// The sentinel 0x7F/0x7F pair ("RPN null") is not special-cased; it simply
// selects an RPN this core never services, matching the original engine.
func doRPNLSB(inst *Instance, channel uint8, data uint32) {
	ch := &inst.Channels[channel]
	ch.RegData = (ch.RegData & 0x3F80) | uint16(data)&0x7F
	ch.RegNon = false
}

func doRPNMSB(inst *Instance, channel uint8, data uint32) {
	ch := &inst.Channels[channel]
	ch.RegData = (ch.RegData & 0x007F) | (uint16(data)&0x7F)<<7
	ch.RegNon = false
}

// doAllSoundOff handles CC 120: every voice on the channel is cut
// immediately, with no release stage, and its replay link cleared
// (spec.md section 4.E, CC 120).
func doAllSoundOff(inst *Instance, channel uint8, data uint32) {
	inst.Voices.forEachOnChannel(channel, func(v *Voice) {
		v.Active = false
		v.Replay = voiceRef{}
	})
	inst.Voices.compact()
}

// doResetAllControllers handles CC 121 (spec.md section 4.E, CC 121). The
// replay voice's velocity is set from the raw controller data value
// rather than from 0, reproducing the original engine's behavior exactly
// (spec.md section 9, open question: "Reset All Controllers replay
// velocity"). This is preserved, not fixed.
func doResetAllControllers(inst *Instance, channel uint8, data uint32) {
	ch := &inst.Channels[channel]
	ch.Expression = 127
	ch.Pressure = 127
	ch.Volume = 100
	ch.Pan = 0
	ch.Balance = 0
	ch.RegData = 0xFFFF
	ch.RegNon = false
	ch.PitchRange = inst.Config.DefaultPitchRange
	ch.Pitch = 0
	ch.PitchAdjust = 0
	ch.Hold = 0
	recomputePan(inst, channel)

	curve := inst.Config.volumeCurve()
	inst.Voices.forEachOnChannel(channel, func(v *Voice) {
		if v.Sample == nil || v.Patch == nil {
			return
		}
		v.SampleInc = sampleInc(uint8(v.NoteID), v.Patch.Note, ch.PitchAdjust, inst.Config.SampleRate, v.Sample.IncDiv)
		v.Velocity = 0
		v.VolLvl = volumeKernel(curve, ch.Volume, ch.Expression, v.Velocity, v.Patch.Amp)
		v.Hold = 0

		if r := inst.Voices.at(v.Replay); r != nil {
			r.Velocity = uint8(data)
			if r.Patch != nil {
				r.VolLvl = volumeKernel(curve, ch.Volume, ch.Expression, r.Velocity, r.Patch.Amp)
			}
		}
	})
}

// doAllNotesOff handles CC 123. Drum channels ignore it entirely. A
// voice currently latched by the hold pedal only has HoldOff set, its
// release deferred to when the pedal lifts; every other enveloped voice
// below the clamped stage, attack stages included, moves straight to the
// clamped release stage (spec.md section 4.E, CC 123). Voices with no
// envelope are left untouched, matching the original engine exactly.
func doAllNotesOff(inst *Instance, channel uint8, data uint32) {
	ch := &inst.Channels[channel]
	if ch.IsDrum {
		return
	}
	inst.Voices.forEachOnChannel(channel, func(v *Voice) {
		if v.Hold != 0 {
			v.Hold |= HoldOff
			return
		}
		if v.Modes&SampleEnvelope != 0 && v.Env < EnvClamped {
			v.Env = EnvClamped
			v.EnvInc = directedRate(v, EnvClamped)
		}
	})
}
