package srs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRating_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    Rating
		wantErr bool
	}{
		{`1`, Again, false},
		{`4`, Easy, false},
		{`"Good"`, Good, false},
		{`"Hard"`, Hard, false},
		{`7`, Rating(7), false},
		{`"Perfect"`, 0, true},
		{`true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var r Rating
			err := json.Unmarshal([]byte(tt.in), &r)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRating)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestRating_StringAndValidity(t *testing.T) {
	assert.Equal(t, "Again", Again.String())
	assert.Equal(t, "Rating(9)", Rating(9).String())
	assert.True(t, Easy.IsValid())
	assert.False(t, Rating(0).IsValid())

	_, err := json.Marshal(Rating(9))
	assert.Error(t, err)
}

func TestState_JSON(t *testing.T) {
	data, err := json.Marshal(Relearning)
	require.NoError(t, err)
	assert.Equal(t, `"Relearning"`, string(data))

	var s State
	require.NoError(t, json.Unmarshal([]byte(`"New"`), &s))
	assert.Equal(t, New, s)

	assert.Error(t, json.Unmarshal([]byte(`"Mastered"`), &s))
	assert.Equal(t, "State(9)", State(9).String())
}

func TestWeightsFromSlice(t *testing.T) {
	w, err := WeightsFromSlice(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultWeights, w)

	_, err = WeightsFromSlice([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidWeights)

	custom := DefaultWeights
	custom[2] = 2.5
	w, err = WeightsFromSlice(custom[:])
	require.NoError(t, err)
	assert.Equal(t, 2.5, w[2])
}

func TestWeightsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(w *Weights)
	}{
		{"w[10] zero", func(w *Weights) { w[10] = 0 }},
		{"w[11] equal to one", func(w *Weights) { w[11] = 1 }},
		{"w[11] below one", func(w *Weights) { w[11] = 0.5 }},
		{"w[12] zero", func(w *Weights) { w[12] = 0 }},
		{"w[12] equal to one", func(w *Weights) { w[12] = 1 }},
		{"w[12] above one", func(w *Weights) { w[12] = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := DefaultWeights
			tt.mutate(&w)
			assert.ErrorIs(t, w.Validate(), ErrInvalidWeights)
		})
	}

	require.NoError(t, DefaultWeights.Validate())
}
