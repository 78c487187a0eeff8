package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedcu/solver/internal/entity"
)

func TestNewSchedule_RejectsEndNotAfterStart(t *testing.T) {
	start := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	_, err := entity.NewSchedule("sched-1", start, start, "weekly", nil, nil, nil)
	require.Error(t, err)
}

func TestNewSchedule_RejectsEmptyID(t *testing.T) {
	start := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	_, err := entity.NewSchedule("", start, end, "weekly", nil, nil, nil)
	require.Error(t, err)
}

func TestPeriodAssignment_AddAndLookup(t *testing.T) {
	start := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)
	pa, err := entity.NewPeriodAssignment(0, start, end)
	require.NoError(t, err)

	pa.Add("w1", entity.ShiftInstance{ShiftTypeID: "day", PeriodIndex: 0, Date: start, WorkerID: "w1"})
	shifts := pa.ShiftsFor("w1")
	assert.Len(t, shifts, 1)
	assert.Equal(t, "day", shifts[0].ShiftTypeID)
}
