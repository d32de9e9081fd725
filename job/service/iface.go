package service

import (
	"context"

	"github.com/monsalvellc/RoofingLeadApp/job/domain"
)

// UploadMediaRequest carries one media upload. Shared, when set,
// overrides the job's folder default for the asset.
type UploadMediaRequest struct {
	JobID       string
	Category    domain.Category
	Name        string
	ContentType string
	Data        []byte
	Shared      *bool
}

//go:generate mockery --name IJobService --output ./mocks
type IJobService interface {
	GetJob(ctx context.Context, jobID string) (*domain.Job, error)
	ListJobs(ctx context.Context, companyID string) ([]*domain.Job, error)
	WatchJobs(ctx context.Context, companyID string) (<-chan []*domain.Job, func(), error)
	CreateJob(ctx context.Context, job *domain.Job) (string, error)
	UpdateJobDetails(ctx context.Context, jobID string, up *JobUpdate) (*domain.Job, error)
	DeleteJob(ctx context.Context, jobID string) error

	AddPayment(ctx context.Context, jobID string, amount float64) (*domain.Job, error)
	RemovePayment(ctx context.Context, jobID string, index int) (*domain.Job, error)
	SetDepositPaid(ctx context.Context, jobID string, paid bool) (*domain.Job, error)
	SetContractAmount(ctx context.Context, jobID string, amount float64) (*domain.Job, error)
	SetDepositAmount(ctx context.Context, jobID string, amount float64) (*domain.Job, error)

	ChangeStatus(ctx context.Context, jobID string, target domain.Status) (*domain.Job, error)

	UploadMedia(ctx context.Context, req *UploadMediaRequest) (*domain.MediaAsset, error)
	DeleteMedia(ctx context.Context, jobID, assetID string) error
	SetAssetShared(ctx context.Context, jobID, assetID string, shared bool) error
	RecategorizeAsset(ctx context.Context, jobID, assetID string, target domain.Category) error
	SetFolderDefault(ctx context.Context, jobID string, category domain.Category, shared bool) error
	DiscardPendingUploads(jobID string)
}
