package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/careerbridge/identity-system/internal/core/domain"
)

const auditCollection = "admin_audit"

// AuditRepository appends privileged session transitions. Writes are invoked
// by the async recorder, never directly from the login path.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	AdminID   string `bson:"admin_id"`
	Username  string `bson:"username"`
	Action    string `bson:"action"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, entry domain.AuditEntry) error {
	doc := auditDoc{
		AdminID:   entry.AdminID,
		Username:  entry.Username,
		Action:    entry.Action,
		Timestamp: entry.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
