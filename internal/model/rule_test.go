package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorderRuleValidate(t *testing.T) {
	t.Parallel()

	valid := ReorderRule{
		PartID:              "P-001",
		MinStock:            5,
		ReorderQuantity:     20,
		PreferredSupplierID: "SUP-001",
		MaxPriceCents:       10000,
		Priority:            PriorityMedium,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *ReorderRule)
	}{
		{name: "empty part id", mutate: func(r *ReorderRule) { r.PartID = "" }},
		{name: "zero reorder quantity", mutate: func(r *ReorderRule) { r.ReorderQuantity = 0 }},
		{name: "negative reorder quantity", mutate: func(r *ReorderRule) { r.ReorderQuantity = -1 }},
		{name: "negative min stock", mutate: func(r *ReorderRule) { r.MinStock = -1 }},
		{name: "negative max price", mutate: func(r *ReorderRule) { r.MaxPriceCents = -1 }},
		{name: "unknown priority", mutate: func(r *ReorderRule) { r.Priority = "URGENT" }},
		{name: "empty priority", mutate: func(r *ReorderRule) { r.Priority = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := valid
			tt.mutate(&r)
			assert.ErrorIs(t, r.Validate(), ErrValidation)
		})
	}
}
