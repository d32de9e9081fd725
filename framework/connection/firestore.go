package connection

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"

	"github.com/monsalvellc/RoofingLeadApp/common"
	"github.com/monsalvellc/RoofingLeadApp/logger"
)

var (
	ErrFirestoreInitialization = errors.New("firestore initialization error")
)

type FirestoreClient struct {
	// firestore clients
	fs *firestore.Client
}

func NewFirestore(ctx context.Context, log *logger.Logging) (*FirestoreClient, error) {
	logger := log.Logger(ctx)

	fs, err := firestore.NewClient(ctx, common.ProjectID)
	if err != nil {
		logger.Errorf("%s: %s", ErrFirestoreInitialization, err)
		return nil, ErrFirestoreInitialization
	}

	return &FirestoreClient{
		fs,
	}, nil
}
