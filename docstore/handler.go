package docstore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/monsalvellc/RoofingLeadApp/docstore/iface"
)

// DocumentHandler is the live firestore implementation of
// iface.DocumentsHandler.
type DocumentHandler struct{}

type documentSnapshot struct {
	snap *firestore.DocumentSnapshot
}

func (d documentSnapshot) ID() string {
	return d.snap.Ref.ID
}

func (d documentSnapshot) Exists() bool {
	return d.snap.Exists()
}

func (d documentSnapshot) DataTo(v interface{}) error {
	return d.snap.DataTo(v)
}

func (d documentSnapshot) Snapshot() *firestore.DocumentSnapshot {
	return d.snap
}

func (h DocumentHandler) Get(ctx context.Context, ref *firestore.DocumentRef) (iface.DocumentSnapshot, error) {
	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return documentSnapshot{snap}, nil
}

func (h DocumentHandler) GetAll(iter *firestore.DocumentIterator) ([]iface.DocumentSnapshot, error) {
	var snaps []iface.DocumentSnapshot

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		snaps = append(snaps, documentSnapshot{snap})
	}

	return snaps, nil
}

func (h DocumentHandler) Create(ctx context.Context, ref *firestore.DocumentRef, data interface{}) (*firestore.WriteResult, error) {
	return ref.Create(ctx, data)
}

func (h DocumentHandler) Set(ctx context.Context, ref *firestore.DocumentRef, data interface{}, opts ...firestore.SetOption) (*firestore.WriteResult, error) {
	return ref.Set(ctx, data, opts...)
}

func (h DocumentHandler) Update(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update, preconds ...firestore.Precondition) (*firestore.WriteResult, error) {
	return ref.Update(ctx, updates, preconds...)
}

func (h DocumentHandler) Delete(ctx context.Context, ref *firestore.DocumentRef, preconds ...firestore.Precondition) (*firestore.WriteResult, error) {
	return ref.Delete(ctx, preconds...)
}
