package form

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AlenaMolokova/checkout/internal/constants"
)

func TestNewStateStartsInvalid(t *testing.T) {
	s := NewState()
	assert.False(t, s.Ready())
	for _, f := range constants.Fields {
		assert.False(t, s.Valid(f), f)
	}
	assert.Len(t, s.Snapshot(), len(constants.Fields))
}

func TestStateReadyOnlyWhenEveryFieldValid(t *testing.T) {
	s := NewState()
	for i, f := range constants.Fields {
		ready := s.Set(f, true)
		assert.Equal(t, i == len(constants.Fields)-1, ready, f)
	}

	assert.False(t, s.Set(constants.FieldExpiry, false))
	assert.True(t, s.Set(constants.FieldExpiry, true))
}

func TestStateRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	s := NewState()
	model := make(map[constants.Field]bool)

	for i := 0; i < 1000; i++ {
		f := constants.Fields[rng.Intn(len(constants.Fields))]
		ok := rng.Intn(3) != 0
		model[f] = ok

		all := true
		for _, field := range constants.Fields {
			all = all && model[field]
		}
		assert.Equal(t, all, s.Set(f, ok))
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewState()
	snap := s.Snapshot()
	snap[constants.FieldName] = true
	assert.False(t, s.Valid(constants.FieldName))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "none", StatusNone.String())
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "fail", StatusFail.String())
}
