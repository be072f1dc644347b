package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForStock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		current  int64
		minStock int64
		want     StockStatus
	}{
		{name: "zero stock", current: 0, minStock: 10, want: StockStatusOutOfStock},
		{name: "negative stock", current: -1, minStock: 10, want: StockStatusOutOfStock},
		{name: "below threshold", current: 9, minStock: 10, want: StockStatusCritical},
		{name: "exactly at threshold", current: 10, minStock: 10, want: StockStatusLowStock},
		{name: "inside the low band", current: 14, minStock: 10, want: StockStatusLowStock},
		{name: "at one and a half times threshold", current: 15, minStock: 10, want: StockStatusInStock},
		{name: "well stocked", current: 100, minStock: 10, want: StockStatusInStock},
		{name: "zero threshold", current: 1, minStock: 0, want: StockStatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, StatusForStock(tt.current, tt.minStock))
		})
	}
}

func TestPartsFilterEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, PartsFilter{}.Empty())
	assert.False(t, PartsFilter{IDs: []string{"P-001"}}.Empty())
	assert.False(t, PartsFilter{Categories: []string{"brakes"}}.Empty())
	assert.False(t, PartsFilter{Statuses: []StockStatus{StockStatusCritical}}.Empty())
}
