package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		probs   []int
		valid   bool
		total   int
		message string
	}{
		{"exact hundred", []int{30, 30, 40}, true, 100, "Probability configuration is valid (100%)"},
		{"below hundred", []int{10, 20, 30}, false, 60, "Total probability must be 100%, current total: 60%"},
		{"above hundred", []int{50, 50, 1}, false, 101, "Total probability must be 100%, current total: 101%"},
		{"zeros allowed", []int{100, 0, 0}, true, 100, "Probability configuration is valid (100%)"},
		{"out of range sums to hundred", []int{110, -10, 0}, false, 100, "Each probability must be between 0% and 100%, check prizes: 1, 2"},
		{"out of range wins over total", []int{30, 30, -5}, false, 55, "Each probability must be between 0% and 100%, check prizes: 3"},
		{"empty", nil, false, 0, "Total probability must be 100%, current total: 0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Validate(prizes(tt.probs...))
			assert.Equal(t, tt.valid, v.Valid)
			assert.Equal(t, tt.total, v.Total)
			assert.Equal(t, tt.message, v.Message)
		})
	}
}

func TestValidate_ReportsOutOfRangeIndexes(t *testing.T) {
	v := Validate(prizes(110, -10, 0))
	assert.Equal(t, []int{0, 1}, v.Invalid)
}

func TestDefaultPrizes(t *testing.T) {
	for count := 3; count <= 10; count++ {
		ps := DefaultPrizes(count)
		assert.Len(t, ps, count)
		assert.True(t, Validate(ps).Valid, "count %d", count)
		assert.Equal(t, "Prize 1", ps[0].Name)
	}

	ps := DefaultPrizes(3)
	assert.Equal(t, 33, ps[0].Probability)
	assert.Equal(t, 33, ps[1].Probability)
	assert.Equal(t, 34, ps[2].Probability)

	assert.Nil(t, DefaultPrizes(0))
}
