// handlers_sysex.go - Roland/GM/XG sysex handlers and meta-event placeholders

package wildtune

// doRolandDrumTrack implements the Roland drum-track-setting sysex
// (spec.md section 4.F): data > 0 switches the channel into the drum
// namespace and drops its melodic patch; data == 0 restores it to patch 0
// and clears the drum flag. The channel number has already been remapped
// from the sysex payload's nibble by the dispatcher.
func doRolandDrumTrack(inst *Instance, channel uint8, data uint32) {
	ch := &inst.Channels[channel]
	if data > 0 {
		ch.IsDrum = true
		ch.Patch = nil
		return
	}
	ch.IsDrum = false
	patch, _ := inst.getPatch(0)
	ch.Patch = patch
}

// doSysexReset is the event-stream handler shared by the Roland GS
// reset, the Universal GM On message and the Yamaha XG reset sysex: all
// three run the same reset sequence (spec.md section 4.F).
func doSysexReset(inst *Instance, channel uint8, data uint32) {
	inst.rolandReset()
}

// Meta-event handlers. None of them touch channel or voice state; a meta
// event carries only timing/informational content for a renderer walking
// the event stream, never a synthesis effect (spec.md section 4.F).
func doMetaTempo(inst *Instance, channel uint8, data uint32)      {}
func doMetaEndOfTrack(inst *Instance, channel uint8, data uint32) {}

// doMetaPassthrough is setupMeta's handler for every meta family that is
// recorded verbatim but otherwise inert: sequence number, the text
// family 01-09, MIDI channel 20 and MIDI port 21. channel carries the
// meta type byte (these aren't real MIDI channels) and data carries the
// declared payload length for the variable-length families, or the raw
// payload byte for channel/port.
func doMetaPassthrough(inst *Instance, channel uint8, data uint32) {}
