package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTensorSameShape(t *testing.T) {
	cases := []struct {
		name string
		a, b []int
		want bool
	}{
		{"equal", []int{3, 3}, []int{3, 3}, true},
		{"different dims", []int{3, 3}, []int{3, 4}, false},
		{"different rank", []int{9}, []int{3, 3}, false},
		{"both scalar", nil, nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tensor{Shape: tc.a}.SameShape(Tensor{Shape: tc.b})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTensorValidate(t *testing.T) {
	ok := Tensor{Shape: []int{2, 3}, Data: make([]float64, 6)}
	require.NoError(t, ok.Validate())

	scalar := Tensor{Data: []float64{1}}
	require.NoError(t, scalar.Validate())

	short := Tensor{Shape: []int{2, 3}, Data: make([]float64, 5)}
	require.Error(t, short.Validate())

	negative := Tensor{Shape: []int{-1}, Data: nil}
	require.Error(t, negative.Validate())
}

func TestStateDictClone(t *testing.T) {
	original := StateDict{"w": {Shape: []int{2}, Data: []float64{1, 2}}}
	clone := original.Clone()

	clone["w"].Data[0] = 99
	clone["w"].Shape[0] = 7

	assert.Equal(t, 1.0, original["w"].Data[0])
	assert.Equal(t, 2, original["w"].Shape[0])
}
