package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kingrain94/usage-billing-api/internal/config"
	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/repository"
)

const dayLayout = "2006-01-02"

type EventStoreRepository struct {
	collection *mongo.Collection
}

func NewEventStoreRepository(collection *mongo.Collection) *EventStoreRepository {
	return &EventStoreRepository{collection: collection}
}

// NewEventStoreFromClient resolves the events collection named by cfg.
func NewEventStoreFromClient(client *mongo.Client, cfg *config.MongoConfig) *EventStoreRepository {
	return NewEventStoreRepository(client.Database(cfg.Database).Collection(cfg.EventsCollection))
}

func (r *EventStoreRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tenant_id", Value: 1}, {Key: "created_at", Value: 1}},
		Options: options.Index().SetName("tenant_created_at"),
	})
	if err != nil {
		return fmt.Errorf("failed to create event indexes: %w", err)
	}
	return nil
}

func (r *EventStoreRepository) Insert(ctx context.Context, event *domain.UsageEvent) (string, error) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	event.CreatedAt = event.CreatedAt.UTC()
	if event.TotalTokens == 0 {
		event.TotalTokens = event.SumTokenCounts()
	}

	res, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", errors.Join(repository.ErrDuplicateKey, err)
		}
		return "", fmt.Errorf("failed to insert usage event: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprint(res.InsertedID), nil
	}
	event.ID = oid
	return oid.Hex(), nil
}

func (r *EventStoreRepository) UpdateFeedback(ctx context.Context, tenantID, eventID string, feedback bool) error {
	oid, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return repository.ErrNotFound
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}, {Key: "tenant_id", Value: tenantID}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "customer_feedback", Value: feedback}}}},
	)
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type totalsRow struct {
	ID     string  `bson:"_id"`
	Tokens int64   `bson:"tokens"`
	Price  float64 `bson:"price"`
}

func (r *EventStoreRepository) AggregateWindow(ctx context.Context, tenantID string, start, endExclusive time.Time) (domain.UsageTotals, error) {
	pipeline := mongo.Pipeline{
		windowMatch(tenantID, start, endExclusive),
		pricedProjection(),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "tokens", Value: bson.D{{Key: "$sum", Value: "$total_tokens"}}},
			{Key: "price", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}

	rows, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return domain.UsageTotals{}, err
	}
	if len(rows) == 0 {
		return domain.UsageTotals{}, nil
	}
	return domain.UsageTotals{Tokens: rows[0].Tokens, Price: rows[0].Price}, nil
}

// AggregateByDay buckets by UTC calendar day of created_at.
func (r *EventStoreRepository) AggregateByDay(ctx context.Context, tenantID string, start, endExclusive time.Time) (map[time.Time]domain.UsageTotals, error) {
	pipeline := mongo.Pipeline{
		windowMatch(tenantID, start, endExclusive),
		pricedProjection(),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: "%Y-%m-%d"},
				{Key: "date", Value: "$created_at"},
			}}}},
			{Key: "tokens", Value: bson.D{{Key: "$sum", Value: "$total_tokens"}}},
			{Key: "price", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	rows, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	days := make(map[time.Time]domain.UsageTotals, len(rows))
	for _, row := range rows {
		day, err := time.ParseInLocation(dayLayout, row.ID, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("failed to parse day bucket %q: %w", row.ID, err)
		}
		days[day] = domain.UsageTotals{Tokens: row.Tokens, Price: row.Price}
	}
	return days, nil
}

func (r *EventStoreRepository) RawEventsInRange(ctx context.Context, tenantID string, start, endExclusive time.Time) ([]domain.UsageEvent, error) {
	opts := options.Find().
		SetProjection(bson.D{
			{Key: "tenant_id", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "total_tokens", Value: 1},
			{Key: "tokens", Value: 1},
		}).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, windowFilter(tenantID, start, endExclusive), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find usage events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []domain.UsageEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode usage events: %w", err)
	}
	return events, nil
}

func (r *EventStoreRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]totalsRow, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate usage events: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []totalsRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode aggregation: %w", err)
	}
	return rows, nil
}

func windowFilter(tenantID string, start, endExclusive time.Time) bson.D {
	return bson.D{
		{Key: "tenant_id", Value: tenantID},
		{Key: "created_at", Value: bson.D{
			{Key: "$gte", Value: start.UTC()},
			{Key: "$lt", Value: endExclusive.UTC()},
		}},
	}
}

func windowMatch(tenantID string, start, endExclusive time.Time) bson.D {
	return bson.D{{Key: "$match", Value: windowFilter(tenantID, start, endExclusive)}}
}

// pricedProjection prices each event as the sum of count * price over its
// token categories.
func pricedProjection() bson.D {
	categories := bson.D{{Key: "$objectToArray", Value: bson.D{
		{Key: "$ifNull", Value: bson.A{"$tokens", bson.D{}}},
	}}}

	return bson.D{{Key: "$project", Value: bson.D{
		{Key: "created_at", Value: 1},
		{Key: "total_tokens", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$total_tokens", 0}}}},
		{Key: "price", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$map", Value: bson.D{
			{Key: "input", Value: categories},
			{Key: "as", Value: "t"},
			{Key: "in", Value: bson.D{{Key: "$multiply", Value: bson.A{"$$t.v.count", "$$t.v.price"}}}},
		}}}}}},
	}}}
}
