// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloatToPCM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		bits  int
		want  int32
	}{
		{name: "zero 16-bit", input: 0, bits: 16, want: 0},
		{name: "max positive 16-bit", input: 1, bits: 16, want: math.MaxInt16},
		{name: "max negative 16-bit", input: -1, bits: 16, want: -math.MaxInt16},
		{name: "half 16-bit rounds away from zero", input: 0.5, bits: 16, want: 16384},
		{name: "quarter 16-bit", input: 0.25, bits: 16, want: 8192},
		{name: "clamp over max", input: 1.5, bits: 16, want: math.MaxInt16},
		{name: "clamp under min", input: -1.5, bits: 16, want: -math.MaxInt16},
		{name: "max positive 8-bit", input: 1, bits: 8, want: 127},
		{name: "max positive 24-bit", input: 1, bits: 24, want: 8388607},
		{name: "max negative 24-bit", input: -1, bits: 24, want: -8388607},
		{name: "max positive 32-bit", input: 1, bits: 32, want: math.MaxInt32},
		{name: "max negative 32-bit", input: -1, bits: 32, want: -math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FloatToPCM(tt.input, tt.bits)
			if got != tt.want {
				t.Errorf("FloatToPCM(%v, %d) = %d, want %d", tt.input, tt.bits, got, tt.want)
			}
		})
	}
}

func BenchmarkFloatToPCM(b *testing.B) {
	b.ReportAllocs()

	var sink int32
	for i := range b.N {
		sink = FloatToPCM(float64(i%200)/100-1, 16)
	}
	_ = sink
}
