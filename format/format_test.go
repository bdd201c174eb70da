package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	assert.Equal(t, "19,260", Number(19260, 0))
	assert.Equal(t, "1,605.13", Number(1605.125, 2))
	assert.Equal(t, "0", Number(0, 0))
}

func TestUnits(t *testing.T) {
	assert.Equal(t, "2,346 units", Units(2345.6))
}

func TestSignedPercent(t *testing.T) {
	assert.Equal(t, "-19.8%", SignedPercent(-19.75))
	assert.Equal(t, "+56.0%", SignedPercent(56))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 32.1, Ratio(1605, 5000))
	assert.Equal(t, 100.0, Ratio(7000, 5000))
	assert.Equal(t, 0.0, Ratio(-1, 5000))
	assert.Equal(t, 0.0, Ratio(10, 0))
}
