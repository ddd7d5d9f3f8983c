package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/controlchart/pkg/domain/model"
)

func kyiv(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(model.DefaultTimezone)
	gt.NoError(t, err)
	return loc
}

func TestWorkWeek(t *testing.T) {
	loc := kyiv(t)
	wantStart := time.Date(2026, 10, 5, 0, 1, 0, 0, loc)
	wantEnd := time.Date(2026, 10, 9, 23, 59, 59, 999999999, loc)

	testCases := []struct {
		name string
		now  time.Time
	}{
		{"from wednesday", time.Date(2026, 10, 14, 10, 0, 0, 0, loc)},
		{"from monday morning", time.Date(2026, 10, 12, 0, 0, 30, 0, loc)},
		{"from sunday night", time.Date(2026, 10, 18, 23, 30, 0, 0, loc)},
		{"from UTC instant", time.Date(2026, 10, 14, 5, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dr := model.PreviousWorkWeek(tc.now, loc)
			gt.True(t, dr.Start.Equal(wantStart))
			gt.True(t, dr.End.Equal(wantEnd))
		})
	}

	t.Run("current week", func(t *testing.T) {
		dr := model.WorkWeek(time.Date(2026, 10, 14, 10, 0, 0, 0, loc), loc, 0)
		gt.True(t, dr.Start.Equal(time.Date(2026, 10, 12, 0, 1, 0, 0, loc)))
		gt.True(t, dr.End.Equal(time.Date(2026, 10, 16, 23, 59, 59, 999999999, loc)))
	})

	t.Run("week crossing DST change", func(t *testing.T) {
		dr := model.PreviousWorkWeek(time.Date(2026, 3, 31, 12, 0, 0, 0, loc), loc)
		gt.True(t, dr.Start.Equal(time.Date(2026, 3, 23, 0, 1, 0, 0, loc)))
		gt.True(t, dr.End.Equal(time.Date(2026, 3, 27, 23, 59, 59, 999999999, loc)))
	})
}

func TestNewDateRange(t *testing.T) {
	start := time.Date(2026, 10, 5, 0, 1, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("valid range", func(t *testing.T) {
		dr, err := model.NewDateRange(start, end)
		gt.NoError(t, err)
		gt.True(t, dr.Start.Equal(start))
		gt.True(t, dr.End.Equal(end))
	})

	t.Run("empty range is allowed", func(t *testing.T) {
		_, err := model.NewDateRange(start, start)
		gt.NoError(t, err)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		_, err := model.NewDateRange(end, start)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvertedRange))
	})
}

func TestParseDateRange(t *testing.T) {
	loc := kyiv(t)

	t.Run("valid dates", func(t *testing.T) {
		dr, err := model.ParseDateRange("2026-10-05", "2026-10-09", loc)
		gt.NoError(t, err)
		gt.True(t, dr.Start.Equal(time.Date(2026, 10, 5, 0, 1, 0, 0, loc)))
		gt.True(t, dr.End.Equal(time.Date(2026, 10, 9, 23, 59, 59, 999999999, loc)))
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := model.ParseDateRange("2026/10/05", "2026-10-09", loc)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("invalid start date")
	})

	t.Run("inverted dates", func(t *testing.T) {
		_, err := model.ParseDateRange("2026-10-09", "2026-10-05", loc)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvertedRange))
	})
}
