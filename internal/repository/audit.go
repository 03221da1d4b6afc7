package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditDocument is an audit trail entry as stored in MongoDB.
type AuditDocument struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty"`
	Timestamp  time.Time              `bson:"timestamp"`
	Level      string                 `bson:"level"`
	Message    string                 `bson:"message"`
	Action     string                 `bson:"action,omitempty"`
	Cashier    string                 `bson:"cashier,omitempty"`
	RequestID  string                 `bson:"request_id,omitempty"`
	Method     string                 `bson:"method,omitempty"`
	Path       string                 `bson:"path,omitempty"`
	StatusCode int                    `bson:"status_code,omitempty"`
	Duration   int64                  `bson:"duration_ms,omitempty"`
	IP         string                 `bson:"ip,omitempty"`
	UserAgent  string                 `bson:"user_agent,omitempty"`
	Error      string                 `bson:"error,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty"`
}

// AuditQueryOptions filters audit documents. Zero values match everything.
type AuditQueryOptions struct {
	Action    string
	Cashier   string
	RequestID string
	Level     string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}

func (o AuditQueryOptions) filter() bson.M {
	filter := bson.M{}
	if o.Action != "" {
		filter["action"] = o.Action
	}
	if o.Cashier != "" {
		filter["cashier"] = o.Cashier
	}
	if o.RequestID != "" {
		filter["request_id"] = o.RequestID
	}
	if o.Level != "" {
		filter["level"] = o.Level
	}
	if o.StartTime != nil || o.EndTime != nil {
		timeFilter := bson.M{}
		if o.StartTime != nil {
			timeFilter["$gte"] = *o.StartTime
		}
		if o.EndTime != nil {
			timeFilter["$lte"] = *o.EndTime
		}
		filter["timestamp"] = timeFilter
	}
	return filter
}

// AuditRepository stores the register audit trail.
type AuditRepository struct {
	collection *mongo.Collection
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(db *MongoDB) *AuditRepository {
	return &AuditRepository{collection: db.Audit}
}

func prepare(doc *AuditDocument) {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if doc.Timestamp.IsZero() {
		doc.Timestamp = time.Now()
	}
}

// Create inserts a single audit document.
func (r *AuditRepository) Create(ctx context.Context, doc *AuditDocument) error {
	prepare(doc)
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// CreateMany inserts audit documents in bulk.
func (r *AuditRepository) CreateMany(ctx context.Context, docs []*AuditDocument) error {
	if len(docs) == 0 {
		return nil
	}

	items := make([]interface{}, len(docs))
	for i, doc := range docs {
		prepare(doc)
		items[i] = doc
	}

	_, err := r.collection.InsertMany(ctx, items)
	return err
}

// Query returns matching audit documents, newest first.
func (r *AuditRepository) Query(ctx context.Context, opts AuditQueryOptions) ([]*AuditDocument, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, opts.filter(), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []*AuditDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Count returns the number of matching audit documents.
func (r *AuditRepository) Count(ctx context.Context, opts AuditQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, opts.filter())
}
