// tuning.go - phase increment computation from note, pitch bend and patch tuning

package wildtune

// sampleInc computes a voice's per-frame phase increment (spec.md section
// 4.A). note is the MIDI note actually played; patchNote, if nonzero,
// overrides it (a patch pinned to a fixed pitch, as drum patches commonly
// are). pitchAdjust is the channel's current pitch-bend adjustment in
// cents. The two divisions are kept in this exact order to preserve the
// original fixed-point scaling bit-for-bit.
func sampleInc(note, patchNote uint8, pitchAdjust int, sampleRate int, incDiv uint32) uint32 {
	usedNote := note
	if patchNote != 0 {
		usedNote = patchNote
	}

	noteF := int(usedNote)*100 + pitchAdjust
	if noteF < 0 {
		noteF = 0
	} else if noteF > 12700 {
		noteF = 12700
	}

	freq := centsToPhase[noteF%1200] >> uint(10-noteF/1200)

	inc := (freq / (uint32(sampleRate) * 100 / 1024)) * 1024
	if incDiv != 0 {
		inc /= incDiv
	}
	return inc
}

// seedFrequency computes the seed frequency used to select a sample at
// note-on (spec.md section 4.C, step 2): note_used is patch.Note if
// nonzero, else the note that was actually played.
func seedFrequency(note, patchNote uint8) uint32 {
	usedNote := note
	if patchNote != 0 {
		usedNote = patchNote
	}
	octave := usedNote / 12
	return centsToPhase[(int(usedNote)%12)*100] >> uint(10-int(octave))
}

// pitchAdjustFromBend computes Channel.PitchAdjust from the channel's
// pitch-bend range and raw bend value. The divisor asymmetry (8192 for
// negative bend, 8191 for positive) is intentional and preserved exactly
// (spec.md section 4.E, Pitch Bend).
func pitchAdjustFromBend(pitchRange int, pitch int16) int {
	if pitch < 0 {
		return pitchRange * int(pitch) / 8192
	}
	return pitchRange * int(pitch) / 8191
}
