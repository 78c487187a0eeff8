package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedcu/solver/internal/entity"
)

func TestNewShiftType_RejectsNonPositiveDuration(t *testing.T) {
	_, err := entity.NewShiftType("night", "Night", "overnight", "20:00", "08:00", 0, false, 1, nil, nil)
	require.Error(t, err)
}

func TestNewShiftType_RejectsZeroWorkersRequired(t *testing.T) {
	_, err := entity.NewShiftType("night", "Night", "overnight", "20:00", "08:00", 12, false, 0, nil, nil)
	require.Error(t, err)
}

func TestNewShiftType_RejectsOutOfRangeWeekday(t *testing.T) {
	_, err := entity.NewShiftType("night", "Night", "overnight", "20:00", "08:00", 12, false, 1, []entity.Weekday{7}, nil)
	require.Error(t, err)
}

func TestShiftType_IsApplicableOn_NilMeansEveryDay(t *testing.T) {
	st, err := entity.NewShiftType("night", "Night", "overnight", "20:00", "08:00", 12, false, 1, nil, nil)
	require.NoError(t, err)
	assert.True(t, st.IsApplicableOn(entity.Sunday))
}

func TestShiftType_IsApplicableOn_RestrictedSet(t *testing.T) {
	st, err := entity.NewShiftType("weekend", "Weekend", "overnight", "20:00", "08:00", 12, false, 1,
		[]entity.Weekday{entity.Saturday, entity.Sunday}, nil)
	require.NoError(t, err)
	assert.True(t, st.IsApplicableOn(entity.Saturday))
	assert.False(t, st.IsApplicableOn(entity.Monday))
}
