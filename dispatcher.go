// dispatcher.go - byte-stream MIDI/sysex/meta event parsing and dispatch

package wildtune

// rolandSysexPrefix identifies a Roland sysex message addressed to this
// device's model/device id (spec.md section 4.G).
var rolandSysexPrefix = [4]byte{0x41, 0x10, 0x42, 0x12}

var gmResetSysex = [5]byte{0x7e, 0x7f, 0x09, 0x01, 0xf7}
var yamahaResetSysex = [8]byte{0x43, 0x10, 0x4c, 0x00, 0x00, 0x7e, 0x00, 0xf7}

// SetupMIDIEvent decodes exactly one MIDI, sysex or meta event from the
// front of eventData, applies it to inst immediately and records it into
// inst.Stream, and returns the number of bytes consumed (spec.md section
// 4.G). runningStatus supplies the status byte to reuse when eventData[0]
// does not itself carry one (spec.md GLOSSARY: "Running status").
//
// Recording and immediate application happen together: this core has no
// separate replay pass, so every event both updates live state and
// leaves a record an external renderer can walk for timing information
// (tempo, end-of-track) that this core does not interpret itself.
func SetupMIDIEvent(inst *Instance, eventData []byte, runningStatus uint8) (int, error) {
	var command, channel uint8
	pos := 0

	if eventData[0] >= 0x80 {
		command = eventData[0] & 0xf0
		channel = eventData[0] & 0x0f
		pos++
	} else {
		command = runningStatus & 0xf0
		channel = runningStatus & 0x0f
	}

	switch command {
	case 0x80:
		return setupNoteOff(inst, eventData, pos, channel)
	case 0x90:
		if eventData[pos+1] == 0 {
			return setupNoteOff(inst, eventData, pos, channel)
		}
		note, velocity := eventData[pos], eventData[pos+1]
		applyAndRecord(inst, doNoteOn, channel, uint32(note)<<8|uint32(velocity))
		return pos + 2, nil
	case 0xa0:
		note, pressure := eventData[pos], eventData[pos+1]
		applyAndRecord(inst, doAftertouch, channel, uint32(note)<<8|uint32(pressure))
		return pos + 2, nil
	case 0xb0:
		controller, setting := eventData[pos], eventData[pos+1]
		setupControl(inst, channel, controller, setting)
		return pos + 2, nil
	case 0xc0:
		applyAndRecord(inst, doProgramChange, channel, uint32(eventData[pos]))
		return pos + 1, nil
	case 0xd0:
		applyAndRecord(inst, doChannelPressure, channel, uint32(eventData[pos]))
		return pos + 1, nil
	case 0xe0:
		data1, data2 := eventData[pos], eventData[pos+1]
		applyAndRecord(inst, doPitchBend, channel, uint32(data2)<<7|uint32(data1&0x7f))
		return pos + 2, nil
	case 0xf0:
		if channel == 0x0f {
			return setupMeta(inst, eventData, pos)
		}
		if channel == 0 || channel == 7 {
			return setupSysex(inst, eventData, pos)
		}
		inst.logCorrupt("unrecognized 0xFn class")
		return 0, ErrCorruptEvent
	default:
		inst.logCorrupt("missing status byte")
		return 0, ErrCorruptEvent
	}
}

// applyAndRecord is the shared builder step every recorded handler
// (channel, sysex and meta alike) goes through: coalesce-or-append into the event stream, then
// run the handler against live state (spec.md section 4.G).
func applyAndRecord(inst *Instance, h eventHandler, channel uint8, data uint32) {
	inst.Stream.record(h, channel, data)
	h(inst, channel, data)
}

func setupNoteOff(inst *Instance, eventData []byte, pos int, channel uint8) (int, error) {
	note, velocity := eventData[pos], eventData[pos+1]
	applyAndRecord(inst, doNoteOff, channel, uint32(note)<<8|uint32(velocity))
	return pos + 2, nil
}

// controlHandlers maps a CC number to its handler, matching
// midi_setup_control's switch exactly (spec.md section 4.E). A
// controller absent from the table is silently ignored, as in the
// original engine.
var controlHandlers = map[uint8]eventHandler{
	0:   doBankSelect,
	6:   doDataEntryMSB,
	7:   doChannelVolume,
	8:   doBalance,
	10:  doPan,
	11:  doExpression,
	38:  doDataEntryLSB,
	64:  doHoldPedal,
	96:  doDataIncrement,
	97:  doDataDecrement,
	98:  doNRPNLSB,
	99:  doNRPNMSB,
	100: doRPNLSB,
	101: doRPNMSB,
	120: doAllSoundOff,
	121: doResetAllControllers,
	123: doAllNotesOff,
}

func setupControl(inst *Instance, channel, controller, setting uint8) {
	h, ok := controlHandlers[controller]
	if !ok {
		return
	}
	if controller == 0 {
		inst.Channels[channel].Bank = setting
	} else if controller == 7 {
		inst.Channels[channel].Volume = setting
	}
	applyAndRecord(inst, h, channel, uint32(setting))
}

// decodeVLQ reads a big-endian base-128 variable-length quantity starting
// at eventData[pos], matching the original engine's sysex/meta length
// decoding exactly: each byte with the high bit set contributes its low
// 7 bits and signals another byte follows.
func decodeVLQ(eventData []byte, pos int) (value uint32, next int) {
	for eventData[pos] > 0x7f {
		value = (value << 7) + uint32(eventData[pos]&0x7f)
		pos++
	}
	value = (value << 7) + uint32(eventData[pos]&0x7f)
	pos++
	return value, pos
}

// setupSysex decodes one sysex message (0xF0 channel 0 or 7): a VLQ
// length prefix followed by the raw payload. Only payloads ending in
// 0xF7 are inspected for a recognized Roland, GM or Yamaha reset pattern
// (spec.md section 4.F); anything else is consumed and silently dropped.
func setupSysex(inst *Instance, eventData []byte, pos int) (int, error) {
	length, bodyStart := decodeVLQ(eventData, pos)
	pos = bodyStart

	body := eventData[pos : pos+int(length)]
	pos += int(length)

	if len(body) > 0 && body[len(body)-1] == 0xf7 {
		dispatchSysexBody(inst, body)
	}

	return pos, nil
}

// dispatchSysexBody inspects a complete sysex payload (including its
// trailing 0xF7) for the handful of patterns this core understands.
func dispatchSysexBody(inst *Instance, body []byte) {
	if len(body) >= 4 && body[0] == rolandSysexPrefix[0] && body[1] == rolandSysexPrefix[1] &&
		body[2] == rolandSysexPrefix[2] && body[3] == rolandSysexPrefix[3] {
		dispatchRolandSysex(inst, body)
		return
	}

	if len(body) >= 5 && bytesEqual(body[:5], gmResetSysex[:]) {
		applyAndRecord(inst, doSysexReset, 0, 0)
		return
	}
	if len(body) >= 8 && bytesEqual(body[:8], yamahaResetSysex[:]) {
		applyAndRecord(inst, doSysexReset, 0, 0)
		return
	}
}

// dispatchRolandSysex validates the 7-bit Roland checksum over
// body[4:ofs] and, if it matches, decodes the drum-track-setting and
// GS-reset messages (spec.md section 4.F).
func dispatchRolandSysex(inst *Instance, body []byte) {
	var checksum uint8
	ofs := 4
	for {
		checksum += body[ofs]
		if checksum > 0x7f {
			checksum -= 0x80
		}
		ofs++
		if ofs+1 >= len(body) || body[ofs+1] == 0xf7 {
			break
		}
	}
	checksum = 128 - checksum
	if ofs >= len(body) || checksum != body[ofs] {
		return
	}

	if body[4] != 0x40 {
		return
	}
	switch {
	case (body[5]&0xf0) == 0x10 && body[6] == 0x15:
		ch := 0x0f & body[5]
		switch {
		case ch == 0x00:
			ch = DrumChannel
		case ch <= 0x09:
			ch--
		}
		applyAndRecord(inst, doRolandDrumTrack, ch, uint32(body[7]))
	case body[5] == 0x00 && body[6] == 0x7f && body[7] == 0x00:
		applyAndRecord(inst, doSysexReset, 0, 0)
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// setupMeta decodes one meta event (0xFF). Copyright text accumulates
// directly onto Instance.Copyright, newline-joined with any prior
// fragment (spec.md section 4.F). Sequence number, the text family
// 01-09, MIDI channel 20, MIDI port 21, end-of-track and tempo are all
// recorded verbatim into the event stream for a renderer to use; every
// other meta family is skipped over by its declared length with no
// recorded effect. Since an event record's payload is a single uint32,
// "verbatim" for the variable-length sequence-number and text families
// means their declared length, not their text content, which has no
// bearing on audio synthesis and is out of this core's scope.
func setupMeta(inst *Instance, eventData []byte, pos int) (int, error) {
	metaType := eventData[pos]

	switch {
	case metaType == 0x02:
		pos++
		length, bodyStart := decodeVLQ(eventData, pos)
		pos = bodyStart
		text := string(eventData[pos : pos+int(length)])
		pos += int(length)
		applyAndRecord(inst, doMetaPassthrough, metaType, length)
		if inst.Copyright == "" {
			inst.Copyright = text
		} else {
			inst.Copyright = inst.Copyright + "\n" + text
		}
		return pos, nil

	case metaType == 0x00 || (metaType >= 0x01 && metaType <= 0x09):
		pos++
		length, bodyStart := decodeVLQ(eventData, pos)
		pos = bodyStart + int(length)
		applyAndRecord(inst, doMetaPassthrough, metaType, length)
		return pos, nil

	case metaType == 0x20 && eventData[pos+1] == 0x01:
		applyAndRecord(inst, doMetaPassthrough, metaType, uint32(eventData[pos+2]))
		return pos + 3, nil

	case metaType == 0x21 && eventData[pos+1] == 0x01:
		applyAndRecord(inst, doMetaPassthrough, metaType, uint32(eventData[pos+2]))
		return pos + 3, nil

	case metaType == 0x2f && eventData[pos+1] == 0x00:
		applyAndRecord(inst, doMetaEndOfTrack, 0, 0)
		return pos + 2, nil

	case metaType == 0x51 && eventData[pos+1] == 0x03:
		tempo := uint32(eventData[pos+2])<<16 | uint32(eventData[pos+3])<<8 | uint32(eventData[pos+4])
		applyAndRecord(inst, doMetaTempo, 0, tempo)
		return pos + 5, nil

	default:
		pos++
		length, bodyStart := decodeVLQ(eventData, pos)
		pos = bodyStart + int(length)
		return pos, nil
	}
}
