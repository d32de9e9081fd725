package service

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/monsalvellc/RoofingLeadApp/job/domain"
	"github.com/monsalvellc/RoofingLeadApp/slice"
)

// JobUpdate is a partial edit of a job's descriptive fields. Nil fields
// are left untouched; financials, status and media have their own
// operations and are never writable through here.
type JobUpdate struct {
	JobNumber   *string
	JobType     *domain.JobType
	Trades      []string
	Description *string
	Notes       *string
	Insurance   *domain.InsuranceDetails
}

func (s *JobService) UpdateJobDetails(ctx context.Context, jobID string, up *JobUpdate) (*domain.Job, error) {
	if up == nil {
		return nil, ErrInvalidInput
	}

	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	var updates []firestore.Update

	if up.JobNumber != nil {
		job.JobNumber = *up.JobNumber
		updates = append(updates, firestore.Update{Path: "jobNumber", Value: job.JobNumber})
	}

	if up.JobType != nil {
		if *up.JobType != domain.JobTypeRetail && *up.JobType != domain.JobTypeInsurance {
			return nil, ErrInvalidInput
		}

		job.JobType = *up.JobType
		updates = append(updates, firestore.Update{Path: "jobType", Value: job.JobType})
	}

	if up.Trades != nil {
		job.Trades = slice.Unique(up.Trades)
		updates = append(updates, firestore.Update{Path: "trades", Value: job.Trades})
	}

	if up.Description != nil {
		job.Description = *up.Description
		updates = append(updates, firestore.Update{Path: "description", Value: job.Description})
	}

	if up.Notes != nil {
		job.Notes = *up.Notes
		updates = append(updates, firestore.Update{Path: "notes", Value: job.Notes})
	}

	if up.Insurance != nil {
		job.Insurance = up.Insurance
		updates = append(updates, firestore.Update{Path: "insurance", Value: job.Insurance})
	}

	if len(updates) == 0 {
		return job, nil
	}

	if err := s.jobDAL.UpdateJobFields(ctx, jobID, updates); err != nil {
		return nil, wrapPersistence(err)
	}

	return job, nil
}
