// errors.go - error taxonomy for the event-dispatch core

package wildtune

import "errors"

// ErrCorruptEvent is returned by SetupMIDIEvent when it encounters an
// unrecognized 0xFn message class. It is the only user-visible error the
// core ever surfaces; every other failure mode (an unresolved patch or
// sample, an out-of-range RPN value) is handled by silently dropping the
// note or clamping the value, per the design intent that a wavetable
// engine must keep playing through ill-formed input.
var ErrCorruptEvent = errors.New("wildtune: corrupt midi event")
