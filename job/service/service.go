package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/monsalvellc/RoofingLeadApp/common"
	"github.com/monsalvellc/RoofingLeadApp/docstore"
	"github.com/monsalvellc/RoofingLeadApp/framework/connection"
	"github.com/monsalvellc/RoofingLeadApp/job/dal"
	"github.com/monsalvellc/RoofingLeadApp/job/domain"
	"github.com/monsalvellc/RoofingLeadApp/job/ledger"
	"github.com/monsalvellc/RoofingLeadApp/job/pipeline"
	"github.com/monsalvellc/RoofingLeadApp/logger"
	"github.com/monsalvellc/RoofingLeadApp/media/storage"
	"github.com/monsalvellc/RoofingLeadApp/slice"
)

// JobService orchestrates a job's financials, lifecycle status and media.
// Every mutation validates against the in-memory state, builds one
// complete next snapshot and lands it as a single partial-field write.
type JobService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	jobDAL         dal.Jobs
	mediaStorage   storage.Storage
	uploads        *uploadTracker
}

func NewJobService(loggerProvider logger.Provider, conn *connection.Connection) *JobService {
	return &JobService{
		loggerProvider,
		conn,
		dal.NewJobsFirestoreWithClient(conn.Firestore),
		storage.NewCloudStorage(conn.CloudStorage, common.MediaBucket),
		newUploadTracker(),
	}
}

func (s *JobService) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := s.jobDAL.GetJob(ctx, jobID)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, ErrJobNotFound
		}

		return nil, err
	}

	return job, nil
}

func (s *JobService) ListJobs(ctx context.Context, companyID string) ([]*domain.Job, error) {
	return s.jobDAL.ListJobs(ctx, companyID)
}

func (s *JobService) WatchJobs(ctx context.Context, companyID string) (<-chan []*domain.Job, func(), error) {
	return s.jobDAL.WatchJobs(ctx, companyID)
}

func (s *JobService) CreateJob(ctx context.Context, job *domain.Job) (string, error) {
	if job == nil || job.CompanyID == "" || job.CustomerID == "" {
		return "", ErrInvalidInput
	}

	if job.Status == "" {
		job.Status = domain.StatusLead
	}

	if !pipeline.Valid(job.Status) {
		return "", pipeline.ErrUnknownStatus
	}

	if job.JobType == "" {
		job.JobType = domain.JobTypeRetail
	}

	if job.Payments == nil {
		job.Payments = []float64{}
	}

	job.Trades = slice.Unique(job.Trades)

	// Client-supplied financials never carry a trusted balance.
	job.Balance = ledger.ComputeBalance(job.ContractAmount, job.DepositAmount, job.IsDepositPaid, job.Payments)

	if job.Status == domain.StatusCompleted {
		if job.CompletedAt == nil {
			now := time.Now().UTC()
			job.CompletedAt = &now
		}
	} else {
		job.CompletedAt = nil
	}

	return s.jobDAL.CreateJob(ctx, job)
}

// DeleteJob removes the job document, then purges its media blobs
// concurrently. Blob failures are logged, never returned; a leaked blob
// is preferable to a delete that appears to fail after the document is
// already gone.
func (s *JobService) DeleteJob(ctx context.Context, jobID string) error {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	if err := s.jobDAL.DeleteJob(ctx, jobID); err != nil {
		return err
	}

	s.uploads.invalidate(jobID)

	log := s.loggerProvider(ctx)

	g, gctx := errgroup.WithContext(ctx)

	for _, asset := range job.AllMedia() {
		asset := asset

		g.Go(func() error {
			if err := s.mediaStorage.Delete(gctx, asset.URL); err != nil {
				log.Warningf("failed to purge media %s for deleted job %s: %v", asset.ID, jobID, err)
			}

			return nil
		})
	}

	return g.Wait()
}

// DiscardPendingUploads orphans every in-flight upload for the job, for
// example when the job screen is closed mid-transfer.
func (s *JobService) DiscardPendingUploads(jobID string) {
	s.uploads.invalidate(jobID)
}
