package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstFreeRunNumber(t *testing.T) {
	tests := []struct {
		name  string
		used  []int
		floor int
		want  int
	}{
		{"empty set starts at floor", nil, 1, 1},
		{"gap is filled", []int{1, 2, 4}, 1, 3},
		{"contiguous set grows", []int{1, 2, 3}, 1, 4},
		{"numbers below floor are ignored", []int{1, 2}, 5, 5},
		{"gap at the floor itself", []int{2, 3}, 1, 1},
		{"higher floor inside a dense set", []int{5, 6, 8}, 5, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			used := make(map[int]bool, len(tt.used))
			for _, n := range tt.used {
				used[n] = true
			}
			assert.Equal(t, tt.want, firstFreeRunNumber(used, tt.floor))
		})
	}
}
