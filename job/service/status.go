package service

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/monsalvellc/RoofingLeadApp/job/domain"
	"github.com/monsalvellc/RoofingLeadApp/job/pipeline"
)

const (
	statusField      = "status"
	completedAtField = "completedAt"
)

// ChangeStatus moves the job to target and keeps CompletedAt in sync;
// both fields land in the same write.
func (s *JobService) ChangeStatus(ctx context.Context, jobID string, target domain.Status) (*domain.Job, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	result, err := pipeline.Transition(job.Status, target, job.CompletedAt, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	updates := []firestore.Update{
		{Path: statusField, Value: result.Status},
		{Path: completedAtField, Value: result.CompletedAt},
	}

	if err := s.jobDAL.UpdateJobFields(ctx, jobID, updates); err != nil {
		return nil, wrapPersistence(err)
	}

	job.Status = result.Status
	job.CompletedAt = result.CompletedAt

	return job, nil
}
