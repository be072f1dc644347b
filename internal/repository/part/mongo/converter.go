package mongo

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
)

func EntityToModel(e *PartEntity) *model.Part {
	if e == nil {
		return nil
	}

	return &model.Part{
		ID:            e.ID,
		Name:          e.Name,
		PartNumber:    e.PartNumber,
		Category:      e.Category,
		CurrentStock:  e.CurrentStock,
		MinStock:      e.MinStock,
		MaxStock:      e.MaxStock,
		Unit:          e.Unit,
		AvgCostCents:  e.AvgCostCents,
		Compatibility: e.Compatibility,
		Status:        e.Status,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func EntityFromModel(p *model.Part) *PartEntity {
	if p == nil {
		return nil
	}

	return &PartEntity{
		ID:            p.ID,
		Name:          p.Name,
		PartNumber:    p.PartNumber,
		Category:      p.Category,
		CurrentStock:  p.CurrentStock,
		MinStock:      p.MinStock,
		MaxStock:      p.MaxStock,
		Unit:          p.Unit,
		AvgCostCents:  p.AvgCostCents,
		Compatibility: p.Compatibility,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func BuildMongoFilter(f model.PartsFilter) bson.M {
	q := bson.M{}

	if len(f.IDs) > 0 {
		q["_id"] = bson.M{"$in": f.IDs}
	}
	if len(f.Categories) > 0 {
		q["category"] = bson.M{"$in": f.Categories}
	}
	if len(f.Statuses) > 0 {
		q["status"] = bson.M{"$in": f.Statuses}
	}

	return q
}
