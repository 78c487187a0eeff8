package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/solvererr"
)

func TestNewWorker_RejectsEmptyID(t *testing.T) {
	_, err := entity.NewWorker("", "Alice", "", nil, nil, nil)
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*solvererr.InvariantError))
}

func TestNewWorker_RejectsRestrictedPreferredOverlap(t *testing.T) {
	_, err := entity.NewWorker("w1", "Alice", "", []string{"night"}, []string{"night"}, nil)
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*solvererr.InvariantError))
}

func TestNewWorker_DisjointSetsOK(t *testing.T) {
	w, err := entity.NewWorker("w1", "Alice", "staff", []string{"night"}, []string{"day"}, nil)
	require.NoError(t, err)
	assert.True(t, w.IsRestrictedFrom("night"))
	assert.True(t, w.Prefers("day"))
	assert.False(t, w.IsRestrictedFrom("day"))
}

func TestWorker_EqualIgnoresAttributes(t *testing.T) {
	a, err := entity.NewWorker("w1", "Alice", "staff", nil, nil, map[string]any{"seniority": 3})
	require.NoError(t, err)
	b, err := entity.NewWorker("w1", "Alice", "staff", nil, nil, map[string]any{"seniority": 9})
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}
