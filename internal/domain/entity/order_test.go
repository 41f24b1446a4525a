package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, OrderStatus("shipped").IsValid())
	assert.False(t, OrderStatus("Delivered").IsValid())
}

func TestOrderStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusEntered, OrderStatusAssigned, true},
		{OrderStatusAssigned, OrderStatusEntered, true},
		{OrderStatusOutForDelivery, OrderStatusDelivered, true},
		{OrderStatusOutForDelivery, OrderStatusFullReturn, true},
		{OrderStatusEntered, OrderStatusDelivered, false},
		{OrderStatusDelivered, OrderStatusEntered, false},
		{OrderStatusFullReturn, OrderStatusPartialReturn, false},
		{OrderStatusDelivered, OrderStatusDelivered, true},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatusIsReturn(t *testing.T) {
	assert.True(t, OrderStatusPartialReturn.IsReturn())
	assert.True(t, OrderStatusFullReturn.IsReturn())
	assert.False(t, OrderStatusDelivered.IsReturn())
}
