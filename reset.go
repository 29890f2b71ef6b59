// reset.go - the shared GM/GS/XG reset sequence

package wildtune

// rolandReset implements the single reset action shared by Roland GS
// reset, the Universal GM On sysex, and the Yamaha XG reset sysex
// (spec.md section 4.F): every channel returns to GM defaults, with
// channel 9 left as the drum channel.
func (inst *Instance) rolandReset() {
	zero, _ := inst.getPatch(0)
	for i := range inst.Channels {
		ch := &inst.Channels[i]
		if i == DrumChannel {
			ch.resetDefaults(nil, inst.Config.DefaultPitchRange)
		} else {
			ch.resetDefaults(zero, inst.Config.DefaultPitchRange)
		}
		ch.LeftAdjust, ch.RightAdjust = panAdjust(ch.Pan, ch.Balance, inst.Config.MasterVolume)
	}
	inst.Channels[DrumChannel].IsDrum = true
}
