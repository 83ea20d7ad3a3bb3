package model_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldservice/internal/domains/quote/model"
	"fieldservice/shared/timezone"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		current string
		action  string
		want    string
		ok      bool
	}{
		{current: model.StatusPending, action: model.ActionApprove, want: model.StatusApproved, ok: true},
		{current: model.StatusPending, action: model.ActionReject, want: model.StatusRejected, ok: true},
		{current: model.StatusApproved, action: model.ActionReject},
		{current: model.StatusRejected, action: model.ActionApprove},
		{current: model.StatusApproved, action: model.ActionApprove},
		{current: model.StatusPending, action: "expire"},
	}

	for _, tt := range tests {
		t.Run(tt.current+" "+tt.action, func(t *testing.T) {
			got, ok := model.NextStatus(tt.current, tt.action)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuote_IsExpired(t *testing.T) {
	today := timezone.Date(2024, time.June, 10)

	assert.True(t, model.Quote{Status: model.StatusPending, ValidUntil: timezone.Date(2024, time.June, 9)}.IsExpired(today))
	assert.False(t, model.Quote{Status: model.StatusPending, ValidUntil: today}.IsExpired(today))
	assert.False(t, model.Quote{Status: model.StatusApproved, ValidUntil: timezone.Date(2024, time.May, 1)}.IsExpired(today))
}

func TestQuote_IsExpired_WestOfUTC(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	previous := timezone.GetLocation()
	timezone.SetLocation(newYork)
	t.Cleanup(func() { timezone.SetLocation(previous) })

	today := timezone.Date(2026, time.October, 19)
	stored := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

	assert.False(t, model.Quote{Status: model.StatusPending, ValidUntil: stored}.IsExpired(today))
	assert.True(t, model.Quote{Status: model.StatusPending, ValidUntil: stored.AddDate(0, 0, -1)}.IsExpired(today))
}
