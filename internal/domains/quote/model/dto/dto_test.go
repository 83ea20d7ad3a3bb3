package dto_test

import (
	"net/http"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldservice/internal/domains/quote/model"
	"fieldservice/internal/domains/quote/model/dto"
	"fieldservice/shared/failure"
	"fieldservice/shared/timezone"
)

func TestCreateQuoteRequest_ToModel(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := dto.CreateQuoteRequest{ServiceRequestID: 3, Amount: 99.5, ValidFrom: "2024-06-01", ValidUntil: "2024-06-01"}

		m, err := req.ToModel("estimator")

		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, m.Status)
		assert.True(t, m.ValidFrom.Equal(m.ValidUntil))
	})

	t.Run("until before from", func(t *testing.T) {
		req := dto.CreateQuoteRequest{ServiceRequestID: 3, ValidFrom: "2024-06-02", ValidUntil: "2024-06-01"}

		_, err := req.ToModel("estimator")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("bad date", func(t *testing.T) {
		req := dto.CreateQuoteRequest{ServiceRequestID: 3, ValidFrom: "June 1", ValidUntil: "2024-06-01"}

		_, err := req.ToModel("estimator")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestNewGeneratedQuote(t *testing.T) {
	today := timezone.Date(2024, time.March, 15)

	q := dto.NewGeneratedQuote(3, 135.5, today, 1, "estimator")

	assert.Equal(t, model.StatusPending, q.Status)
	assert.InDelta(t, 135.5, q.Amount, 0.0001)
	assert.True(t, today.Equal(q.ValidFrom))
	assert.True(t, timezone.Date(2024, time.April, 15).Equal(q.ValidUntil))

	fallback := dto.NewGeneratedQuote(3, 10, today, 0, "estimator")
	assert.True(t, timezone.Date(2024, time.April, 15).Equal(fallback.ValidUntil))
}

func TestUpdateQuoteRequest_Validity(t *testing.T) {
	current := model.Quote{ValidFrom: timezone.Date(2024, time.June, 1), ValidUntil: timezone.Date(2024, time.July, 1)}

	t.Run("extend until", func(t *testing.T) {
		until := "2024-08-01"

		fields, err := dto.UpdateQuoteRequest{ValidUntil: &until}.Validity(current)

		require.NoError(t, err)
		assert.Contains(t, fields, model.FieldValidUntil)
		assert.NotContains(t, fields, model.FieldValidFrom)
	})

	t.Run("from after current until", func(t *testing.T) {
		from := "2024-07-02"

		_, err := dto.UpdateQuoteRequest{ValidFrom: &from}.Validity(current)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("no dates", func(t *testing.T) {
		fields, err := dto.UpdateQuoteRequest{}.Validity(current)

		require.NoError(t, err)
		assert.Empty(t, fields)
	})
}

func useNewYork(t *testing.T) {
	t.Helper()

	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	previous := timezone.GetLocation()
	timezone.SetLocation(newYork)
	t.Cleanup(func() { timezone.SetLocation(previous) })
}

func TestQuoteDates_WestOfUTC(t *testing.T) {
	useNewYork(t)

	// lib/pq scans DATE columns as midnight UTC.
	stored := model.Quote{
		ID:         4,
		ValidFrom:  time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil: time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
		Status:     model.StatusPending,
	}

	t.Run("response keeps the stored day", func(t *testing.T) {
		var resp dto.QuoteResponse
		resp.FromModel(stored)

		assert.Equal(t, "2026-10-01", resp.ValidFrom)
		assert.Equal(t, "2026-10-19", resp.ValidUntil)
	})

	t.Run("from equal to stored until", func(t *testing.T) {
		from := "2026-10-19"

		fields, err := dto.UpdateQuoteRequest{ValidFrom: &from}.Validity(stored)

		require.NoError(t, err)
		assert.Contains(t, fields, model.FieldValidFrom)
	})

	t.Run("until equal to stored from", func(t *testing.T) {
		until := "2026-10-01"

		_, err := dto.UpdateQuoteRequest{ValidUntil: &until}.Validity(stored)

		require.NoError(t, err)
	})

	t.Run("until before stored from", func(t *testing.T) {
		until := "2026-09-30"

		_, err := dto.UpdateQuoteRequest{ValidUntil: &until}.Validity(stored)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
