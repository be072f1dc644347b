package mongo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
)

// repository persists parts in a Mongo collection. Stock mutations are
// serialized by mu so the single-writer-per-part ordering holds within
// the process; the service is the only writer of the collection.
type repository struct {
	coll *mongo.Collection
	mu   sync.Mutex
}

func NewPartRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) PartByID(ctx context.Context, id string) (*model.Part, error) {
	const op = "part.mongo.PartByID"

	var ent PartEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrPartNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context, filter model.PartsFilter) ([]*model.Part, error) {
	const op = "part.mongo.List"

	cur, err := r.coll.Find(ctx, BuildMongoFilter(filter),
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			log.Printf("%s failed to close cursor: %s", op, cerr)
		}
	}()

	out := make([]*model.Part, 0)
	for cur.Next(ctx) {
		var ent PartEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

func (r *repository) CreateBatch(ctx context.Context, parts []*model.Part) error {
	const op = "part.mongo.CreateBatch"

	docs := make([]any, 0, len(parts))
	for _, p := range parts {
		if p == nil {
			continue
		}
		if p.ID == "" {
			return fmt.Errorf("%s: part ID is empty", op)
		}
		if p.CreatedAt == nil || p.CreatedAt.IsZero() {
			p.CreatedAt = lo.ToPtr(time.Now())
		}
		p.Status = model.StatusForStock(p.CurrentStock, p.MinStock)

		docs = append(docs, EntityFromModel(p))
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) AdjustStock(ctx context.Context, id string, delta int64) (*model.Part, error) {
	const op = "part.mongo.AdjustStock"

	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.PartByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.CurrentStock += delta
	if p.CurrentStock < 0 {
		p.CurrentStock = 0
	}

	return r.storeStock(ctx, op, p)
}

func (r *repository) ApplyDelivery(ctx context.Context, id string, qty, unitCostCents int64) (*model.Part, error) {
	const op = "part.mongo.ApplyDelivery"

	if qty <= 0 {
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.PartByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStock := p.CurrentStock
	newStock := oldStock + qty
	p.AvgCostCents = int64(math.Round(
		float64(oldStock*p.AvgCostCents+qty*unitCostCents) / float64(newStock),
	))
	p.CurrentStock = newStock

	return r.storeStock(ctx, op, p)
}

func (r *repository) storeStock(ctx context.Context, op string, p *model.Part) (*model.Part, error) {
	p.Status = model.StatusForStock(p.CurrentStock, p.MinStock)
	p.UpdatedAt = lo.ToPtr(time.Now())

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": p.ID},
		bson.M{"$set": bson.M{
			"current_stock":  p.CurrentStock,
			"avg_cost_cents": p.AvgCostCents,
			"status":         p.Status,
			"updated_at":     p.UpdatedAt,
		}},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return nil, model.ErrPartNotFound
	}

	return p, nil
}

// EnsureIndexes creates the query indexes the list filters rely on.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}, options.CreateIndexes())

	return err
}
