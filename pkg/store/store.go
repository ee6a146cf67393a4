// Package store provides persistence for generated models.
//
// This package defines the storage interface for saved model records,
// with implementations for different backends:
//   - [MemoryStore]: In-memory storage for development/testing
//   - [MongoStore]: MongoDB-backed storage for deployments that keep models
//
// # Architecture
//
// A saved record carries the generating parameters next to the generated
// model. Generation is deterministic, so the parameters alone could
// reproduce the model; storing both lets readers serve a model without a
// generator and lets tools re-run generation when the parameter schema
// evolves.
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemoryStore()
//
//	// Deployment
//	st, err := store.NewMongoStore(ctx, store.MongoConfig{
//	    URI:      "mongodb://localhost:27017",
//	    Database: "framegen",
//	})
//
// Manage records:
//
//	rec := store.New("office truss", params, m)
//	if err := st.Save(ctx, rec); err != nil {
//	    return err
//	}
//
//	rec, err := st.Get(ctx, rec.ID)
//	if errors.Is(err, store.ErrNotFound) {
//	    // No such record
//	}
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mtkb13/framegen/pkg/model"
	"github.com/mtkb13/framegen/pkg/topology"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// Record is one saved generation: the parameters, the model they
// produced, and bookkeeping.
type Record struct {
	ID        string          `json:"id" bson:"_id"`
	Name      string          `json:"name,omitempty" bson:"name,omitempty"`
	Params    topology.Params `json:"params" bson:"params"`
	Model     *model.Model    `json:"model" bson:"model"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
}

// Store is the interface for record storage backends.
type Store interface {
	// Save stores a record, replacing any record with the same ID.
	Save(ctx context.Context, rec *Record) error

	// Get retrieves a record by ID.
	// Returns ErrNotFound if no such record exists.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns all records ordered by creation time, newest first.
	List(ctx context.Context) ([]*Record, error)

	// Delete removes a record.
	// Returns ErrNotFound if no such record exists.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// New creates a record with a fresh UUID and the current time.
func New(name string, params topology.Params, m *model.Model) *Record {
	return &Record{
		ID:        uuid.NewString(),
		Name:      name,
		Params:    params,
		Model:     m,
		CreatedAt: time.Now().UTC(),
	}
}
