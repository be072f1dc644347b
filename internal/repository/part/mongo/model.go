package mongo

import (
	"time"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
)

type PartEntity struct {
	ID            string            `bson:"_id"`
	Name          string            `bson:"name"`
	PartNumber    string            `bson:"part_number"`
	Category      string            `bson:"category"`
	CurrentStock  int64             `bson:"current_stock"`
	MinStock      int64             `bson:"min_stock"`
	MaxStock      int64             `bson:"max_stock"`
	Unit          string            `bson:"unit"`
	AvgCostCents  int64             `bson:"avg_cost_cents"`
	Compatibility []string          `bson:"compatibility,omitempty"`
	Status        model.StockStatus `bson:"status"`
	CreatedAt     *time.Time        `bson:"created_at,omitempty"`
	UpdatedAt     *time.Time        `bson:"updated_at,omitempty"`
}
