package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/careerbridge/identity-system/internal/core/domain"
	"github.com/careerbridge/identity-system/internal/core/ports"
)

const credentialCollection = "accounts"

// CredentialRepository stores marketplace accounts for the verification
// endpoint backing login and signup.
type CredentialRepository struct {
	coll *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{coll: db.Collection(credentialCollection)}
}

type accountDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Email           string             `bson:"email"`
	FullName        string             `bson:"full_name,omitempty"`
	Role            string             `bson:"role"`
	DashboardID     string             `bson:"dashboard_id,omitempty"`
	ProfileComplete bool               `bson:"profile_complete"`
	PasswordHash    string             `bson:"password_hash"`
}

func (r *CredentialRepository) Create(ctx context.Context, record *ports.CredentialRecord) (*ports.CredentialRecord, error) {
	doc := accountDoc{
		Email:           record.Email,
		FullName:        record.FullName,
		Role:            string(record.Role),
		DashboardID:     record.DashboardID,
		ProfileComplete: record.ProfileComplete,
		PasswordHash:    record.PasswordHash,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	// fetch back to get ID
	return r.FindByEmail(ctx, record.Email)
}

func (r *CredentialRepository) FindByEmail(ctx context.Context, email string) (*ports.CredentialRecord, error) {
	var doc accountDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	return &ports.CredentialRecord{
		ID:              doc.ID.Hex(),
		Email:           doc.Email,
		FullName:        doc.FullName,
		Role:            domain.Role(doc.Role),
		DashboardID:     doc.DashboardID,
		ProfileComplete: doc.ProfileComplete,
		PasswordHash:    doc.PasswordHash,
	}, nil
}
