package dal

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/monsalvellc/RoofingLeadApp/job/domain"
)

//go:generate mockery --name Jobs --output ./mocks
type Jobs interface {
	GetRef(ctx context.Context, ID string) *firestore.DocumentRef
	GetJob(ctx context.Context, jobID string) (*domain.Job, error)
	ListJobs(ctx context.Context, companyID string) ([]*domain.Job, error)
	ListJobsByCustomer(ctx context.Context, companyID, customerID string) ([]*domain.Job, error)
	CreateJob(ctx context.Context, job *domain.Job) (string, error)
	UpdateJobFields(ctx context.Context, jobID string, updates []firestore.Update) error
	DeleteJob(ctx context.Context, jobID string) error
	WatchJobs(ctx context.Context, companyID string) (<-chan []*domain.Job, func(), error)
}
