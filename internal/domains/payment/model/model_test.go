package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fieldservice/internal/domains/payment/model"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		current string
		action  string
		want    string
		ok      bool
	}{
		{current: model.StatusPending, action: model.ActionComplete, want: model.StatusCompleted, ok: true},
		{current: model.StatusPending, action: model.ActionFail, want: model.StatusFailed, ok: true},
		{current: model.StatusCompleted, action: model.ActionRefund, want: model.StatusRefunded, ok: true},
		{current: model.StatusPending, action: model.ActionRefund},
		{current: model.StatusCompleted, action: model.ActionComplete},
		{current: model.StatusFailed, action: model.ActionComplete},
		{current: model.StatusRefunded, action: model.ActionRefund},
		{current: model.StatusPending, action: "cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.current+" "+tt.action, func(t *testing.T) {
			got, ok := model.NextStatus(tt.current, tt.action)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPayment_IsEditable(t *testing.T) {
	assert.True(t, model.Payment{Status: model.StatusPending}.IsEditable())
	assert.False(t, model.Payment{Status: model.StatusCompleted}.IsEditable())
}
