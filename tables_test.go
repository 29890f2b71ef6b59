// tables_test.go - lookup table shape checks

package wildtune

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolumeCurvesAreMonotonic(t *testing.T) {
	for i := 1; i < 128; i++ {
		assert.GreaterOrEqualf(t, linVolumeCurve[i], linVolumeCurve[i-1], "lin curve dips at %d", i)
		assert.GreaterOrEqualf(t, sqrVolumeCurve[i], sqrVolumeCurve[i-1], "sqr curve dips at %d", i)
	}
}

func TestPanVolumeCurveEndpoints(t *testing.T) {
	assert.Equal(t, int16(0), panVolumeCurve[0])
	assert.Greater(t, panVolumeCurve[127], panVolumeCurve[0])
}

func TestCentsToPhaseLength(t *testing.T) {
	assert.Len(t, centsToPhase, 1200)
	for i := 1; i < 1200; i++ {
		assert.GreaterOrEqualf(t, centsToPhase[i], centsToPhase[i-1], "phase table dips at cent %d", i)
	}
}
