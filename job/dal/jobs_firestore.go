package dal

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/monsalvellc/RoofingLeadApp/docstore"
	"github.com/monsalvellc/RoofingLeadApp/docstore/iface"
	"github.com/monsalvellc/RoofingLeadApp/framework/connection"
	"github.com/monsalvellc/RoofingLeadApp/job/domain"
)

const (
	jobsCollection = "jobs"

	companyField      = "companyId"
	customerField     = "customerId"
	timeModifiedField = "timeModified"
)

// JobsFirestore is used to interact with jobs stored on Firestore.
type JobsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   iface.DocumentsHandler
}

// NewJobsFirestore returns a new JobsFirestore instance with given project id.
func NewJobsFirestore(ctx context.Context, projectID string) (*JobsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewJobsFirestoreWithClient(
		func(_ context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewJobsFirestoreWithClient returns a new JobsFirestore using given client.
func NewJobsFirestoreWithClient(fun connection.FirestoreFromContextFun) *JobsFirestore {
	return &JobsFirestore{
		firestoreClientFun: fun,
		documentsHandler:   docstore.DocumentHandler{},
	}
}

func (d *JobsFirestore) GetRef(ctx context.Context, ID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(jobsCollection).Doc(ID)
}

// GetJob returns the job's data.
func (d *JobsFirestore) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	if jobID == "" {
		return nil, ErrInvalidJobID
	}

	snap, err := d.documentsHandler.Get(ctx, d.GetRef(ctx, jobID))
	if err != nil {
		return nil, err
	}

	var job domain.Job

	if err := snap.DataTo(&job); err != nil {
		return nil, err
	}

	job.Snapshot = snap.Snapshot()
	job.ID = snap.ID()

	return &job, nil
}

// ListJobs returns the company's jobs in store order.
func (d *JobsFirestore) ListJobs(ctx context.Context, companyID string) ([]*domain.Job, error) {
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}

	iter := d.firestoreClientFun(ctx).Collection(jobsCollection).
		Where(companyField, "==", companyID).
		Documents(ctx)

	return d.decodeAll(iter)
}

// ListJobsByCustomer returns the company's jobs bound to the customer.
func (d *JobsFirestore) ListJobsByCustomer(ctx context.Context, companyID, customerID string) ([]*domain.Job, error) {
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}

	iter := d.firestoreClientFun(ctx).Collection(jobsCollection).
		Where(companyField, "==", companyID).
		Where(customerField, "==", customerID).
		Documents(ctx)

	return d.decodeAll(iter)
}

func (d *JobsFirestore) decodeAll(iter *firestore.DocumentIterator) ([]*domain.Job, error) {
	snaps, err := d.documentsHandler.GetAll(iter)
	if err != nil {
		return nil, err
	}

	var jobs []*domain.Job

	for _, snap := range snaps {
		var job domain.Job

		if err := snap.DataTo(&job); err != nil {
			return nil, err
		}

		job.Snapshot = snap.Snapshot()
		job.ID = snap.ID()

		jobs = append(jobs, &job)
	}

	return jobs, nil
}

// CreateJob writes a new job document and returns its id.
func (d *JobsFirestore) CreateJob(ctx context.Context, job *domain.Job) (string, error) {
	ref := d.firestoreClientFun(ctx).Collection(jobsCollection).NewDoc()

	now := time.Now().UTC()
	job.TimeCreated = now
	job.TimeModified = now

	if _, err := d.documentsHandler.Create(ctx, ref, job); err != nil {
		return "", err
	}

	job.ID = ref.ID

	return ref.ID, nil
}

// UpdateJobFields applies a partial-field merge to the job document. The
// caller passes every changed top-level field of one snapshot in a single
// call; the document is never replaced wholesale.
func (d *JobsFirestore) UpdateJobFields(ctx context.Context, jobID string, updates []firestore.Update) error {
	if jobID == "" {
		return ErrInvalidJobID
	}

	updates = append(updates, firestore.Update{Path: timeModifiedField, Value: time.Now().UTC()})

	_, err := d.documentsHandler.Update(ctx, d.GetRef(ctx, jobID), updates)

	return err
}

// DeleteJob removes the job document.
func (d *JobsFirestore) DeleteJob(ctx context.Context, jobID string) error {
	if jobID == "" {
		return ErrInvalidJobID
	}

	_, err := d.documentsHandler.Delete(ctx, d.GetRef(ctx, jobID))

	return err
}

// WatchJobs streams the company's job set on every store change until stop
// is called or ctx is canceled. Resubscribing after a dropped stream is
// the caller's responsibility.
func (d *JobsFirestore) WatchJobs(ctx context.Context, companyID string) (<-chan []*domain.Job, func(), error) {
	if companyID == "" {
		return nil, nil, ErrInvalidCompanyID
	}

	ctx, cancel := context.WithCancel(ctx)

	snaps := d.firestoreClientFun(ctx).Collection(jobsCollection).
		Where(companyField, "==", companyID).
		Snapshots(ctx)

	out := make(chan []*domain.Job)

	go func() {
		defer close(out)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				return
			}

			jobs, err := d.decodeAll(snap.Documents)
			if err != nil {
				continue
			}

			select {
			case out <- jobs:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cancel, nil
}
