// sysex_test.go - Roland/GM/XG sysex dispatch and copyright accumulation
// (spec.md section 8, scenario 5 and the copyright round-trip property)

package wildtune

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGMResetSetsDrumChannelAndDefaults(t *testing.T) {
	inst := newTestInstance()
	inst.Channels[0].PitchRange = 50 // disturb state the reset must restore

	n, err := SetupMIDIEvent(inst, []byte{0xF0, 0x05, 0x7E, 0x7F, 0x09, 0x01, 0xF7}, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	for ch := 0; ch < numChannels; ch++ {
		if ch == DrumChannel {
			assert.True(t, inst.Channels[ch].IsDrum)
		} else {
			assert.False(t, inst.Channels[ch].IsDrum)
		}
		assert.Equal(t, 200, inst.Channels[ch].PitchRange)
		assert.Equal(t, uint16(0xFFFF), inst.Channels[ch].RegData)
	}
}

func TestRolandDrumTrackSysexSetsDrumFlag(t *testing.T) {
	inst := newTestInstance()
	inst.Channels[DrumChannel].IsDrum = false // clear the reset default so the sysex must set it
	// Roland drum-track-setting sysex addressed at channel nibble 0x00,
	// which remaps to the fixed drum channel; checksum 0x1A verified by
	// hand over body[4:8] = {0x40, 0x10, 0x15, 0x01}.
	msg := []byte{0xF0, 0x0A, 0x41, 0x10, 0x42, 0x12, 0x40, 0x10, 0x15, 0x01, 0x1A, 0xF7}
	n, err := SetupMIDIEvent(inst, msg, 0)
	require.NoError(t, err)
	assert.Equal(t, len(msg), n)

	assert.True(t, inst.Channels[DrumChannel].IsDrum)
}

func TestRolandFullResetSysex(t *testing.T) {
	inst := newTestInstance()
	inst.Channels[3].Volume = 1

	// Roland GS full-reset sysex (body[5..7] == 00 7F 00); checksum 0x41
	// verified by hand over body[4:8] = {0x40, 0x00, 0x7F, 0x00}.
	msg := []byte{0xF0, 0x0A, 0x41, 0x10, 0x42, 0x12, 0x40, 0x00, 0x7F, 0x00, 0x41, 0xF7}
	n, err := SetupMIDIEvent(inst, msg, 0)
	require.NoError(t, err)
	assert.Equal(t, len(msg), n)

	assert.Equal(t, uint8(100), inst.Channels[3].Volume)
}

func TestRolandSysexBadChecksumIsIgnored(t *testing.T) {
	inst := newTestInstance()
	inst.Channels[DrumChannel].IsDrum = false // clear the reset default so an accepted message would show
	msg := []byte{0xF0, 0x0A, 0x41, 0x10, 0x42, 0x12, 0x40, 0x10, 0x15, 0x01, 0x00, 0xF7}
	n, err := SetupMIDIEvent(inst, msg, 0)
	require.NoError(t, err)
	assert.Equal(t, len(msg), n, "a recognized-but-unverifiable sysex still consumes its bytes")
	assert.False(t, inst.Channels[DrumChannel].IsDrum, "a bad checksum drops the message silently")
}

// TestCopyrightMetaAccumulates pins the round-trip property from spec.md
// section 8: repeated copyright meta events newline-join in order.
func TestCopyrightMetaAccumulates(t *testing.T) {
	inst := newTestInstance()

	_, err := SetupMIDIEvent(inst, []byte{0xFF, 0x02, 0x02, 'H', 'i'}, 0)
	require.NoError(t, err)
	_, err = SetupMIDIEvent(inst, []byte{0xFF, 0x02, 0x02, 'Y', 'o'}, 0)
	require.NoError(t, err)

	assert.Equal(t, "Hi\nYo", inst.Copyright)
}

func TestMetaEndOfTrackIsRecordedNotCorrupt(t *testing.T) {
	inst := newTestInstance()
	send(t, inst, []byte{0xB0, 0x07, 0x64}) // fills the coalescable sentinel Init leaves at the tail
	before := inst.Stream.len()

	n, err := SetupMIDIEvent(inst, []byte{0xFF, 0x2F, 0x00}, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, before+1, inst.Stream.len(), "end-of-track is recorded into the stream")
}

func TestMetaTextFamilyIsRecordedVerbatim(t *testing.T) {
	inst := newTestInstance()
	send(t, inst, []byte{0xB0, 0x07, 0x64}) // fills the coalescable sentinel Init leaves at the tail
	before := inst.Stream.len()

	n, err := SetupMIDIEvent(inst, []byte{0xFF, 0x03, 0x04, 't', 'r', 'a', 'c'}, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, before+1, inst.Stream.len(), "the text meta event is recorded into the stream")
}

func TestMetaChannelAndPortAreRecorded(t *testing.T) {
	inst := newTestInstance()
	send(t, inst, []byte{0xB0, 0x07, 0x64}) // fills the coalescable sentinel Init leaves at the tail
	before := inst.Stream.len()

	n, err := SetupMIDIEvent(inst, []byte{0xFF, 0x20, 0x01, 0x02}, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = SetupMIDIEvent(inst, []byte{0xFF, 0x21, 0x01, 0x01}, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, before+2, inst.Stream.len(), "both meta events are recorded into the stream")
}
