// volume.go - the volume and pan/balance gain kernel

package wildtune

// volumeKernel computes a voice's vol_lvl from channel volume, channel
// expression and note velocity, scaled by the patch's amplitude trim
// (spec.md section 4.B). curve is sqrVolumeCurve when MixerConfig.LogVolume
// is set, else linVolumeCurve.
func volumeKernel(curve *[128]int16, channelVolume, channelExpression, velocity uint8, patchAmp int32) int32 {
	vol := int32(curve[channelVolume]) * int32(curve[channelExpression]) * int32(curve[velocity])
	vol /= 1048576
	vol = vol * patchAmp / 100
	return vol
}

// panAdjust recomputes a channel's LeftAdjust/RightAdjust mixer gains
// from its pan and balance controllers (spec.md section 4.B). amp is the
// fixed "* 32" scale the original engine hard-codes; masterVolume is the
// instance-wide master volume captured at Init.
func panAdjust(pan, balance int16, masterVolume int32) (left, right int32) {
	const amp = 32

	p := int32(balance) + int32(pan)
	if p > 63 {
		p = 63
	} else if p < -64 {
		p = -64
	}
	p += 64

	left = int32(panVolumeCurve[127-p]) * masterVolume * amp / 1048576
	right = int32(panVolumeCurve[p]) * masterVolume * amp / 1048576
	return left, right
}
