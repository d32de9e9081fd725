package iface

import (
	"context"

	"cloud.google.com/go/firestore"
)

// DocumentSnapshot wraps a firestore document snapshot so DALs can be
// tested without a live client.
type DocumentSnapshot interface {
	ID() string
	Exists() bool
	DataTo(v interface{}) error
	Snapshot() *firestore.DocumentSnapshot
}

//go:generate mockery --name DocumentsHandler --output ../mocks --outpkg mocks
type DocumentsHandler interface {
	Get(ctx context.Context, ref *firestore.DocumentRef) (DocumentSnapshot, error)
	GetAll(iter *firestore.DocumentIterator) ([]DocumentSnapshot, error)
	Create(ctx context.Context, ref *firestore.DocumentRef, data interface{}) (*firestore.WriteResult, error)
	Set(ctx context.Context, ref *firestore.DocumentRef, data interface{}, opts ...firestore.SetOption) (*firestore.WriteResult, error)
	Update(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update, preconds ...firestore.Precondition) (*firestore.WriteResult, error)
	Delete(ctx context.Context, ref *firestore.DocumentRef, preconds ...firestore.Precondition) (*firestore.WriteResult, error)
}
