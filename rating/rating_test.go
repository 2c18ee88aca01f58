package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name                               string
		seats                              int
		wifi, toilet, sockets, calls, card bool
		want                               int
	}{
		{name: "tiny cafe, nothing", seats: 5, want: 1},
		{name: "medium cafe, nothing", seats: 10, want: 2},
		{name: "just under medium", seats: 9, want: 1},
		{name: "large cafe, nothing", seats: 30, want: 3},
		{name: "just under large", seats: 29, want: 2},
		{name: "everything", seats: 30, wifi: true, toilet: true, sockets: true, calls: true, card: true, want: 10},
		{name: "wifi only", seats: 5, wifi: true, want: 3},
		{name: "toilet only", seats: 5, toilet: true, want: 3},
		{name: "sockets only", seats: 5, sockets: true, want: 2},
		{name: "calls and card", seats: 5, calls: true, card: true, want: 3},
		{name: "medium with wifi and toilet", seats: 15, wifi: true, toilet: true, want: 6},
		{name: "zero seats", seats: 0, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.seats, tt.wifi, tt.toilet, tt.sockets, tt.calls, tt.card)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every combination of flags over a seat sweep stays inside [1,10].
func TestComputeBounds(t *testing.T) {
	for seats := 0; seats <= 60; seats += 5 {
		for mask := 0; mask < 32; mask++ {
			got := Compute(seats, mask&1 != 0, mask&2 != 0, mask&4 != 0, mask&8 != 0, mask&16 != 0)
			assert.GreaterOrEqual(t, got, 1)
			assert.LessOrEqual(t, got, 10)
		}
	}
}
