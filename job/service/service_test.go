package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/monsalvellc/RoofingLeadApp/framework/connection"
	jobMocks "github.com/monsalvellc/RoofingLeadApp/job/dal/mocks"
	"github.com/monsalvellc/RoofingLeadApp/job/domain"
	"github.com/monsalvellc/RoofingLeadApp/job/ledger"
	"github.com/monsalvellc/RoofingLeadApp/job/pipeline"
	"github.com/monsalvellc/RoofingLeadApp/logger"
	storageMocks "github.com/monsalvellc/RoofingLeadApp/media/storage/mocks"
)

func newJobServiceTest() (*JobService, *jobMocks.Jobs, *storageMocks.Storage) {
	jobDALMock := new(jobMocks.Jobs)
	storageMock := new(storageMocks.Storage)
	conn := new(connection.Connection)

	service := &JobService{
		logger.FromContext,
		conn,
		jobDALMock,
		storageMock,
		newUploadTracker(),
	}

	return service, jobDALMock, storageMock
}

func ledgerJob() *domain.Job {
	return &domain.Job{
		ID:             "job1",
		CompanyID:      "company1",
		ContractAmount: 5000,
		DepositAmount:  1000,
		IsDepositPaid:  false,
		Payments:       []float64{},
	}
}

func updateValue(updates []firestore.Update, path string) (interface{}, bool) {
	for _, u := range updates {
		if u.Path == path {
			return u.Value, true
		}
	}

	return nil, false
}

func TestJobService_AddPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("writes payments and balance together", func(t *testing.T) {
		s, jobDAL, _ := newJobServiceTest()

		job := ledgerJob()
		job.IsDepositPaid = true

		jobDAL.On("GetJob", ctx, "job1").Return(job, nil).Once()
		jobDAL.On("UpdateJobFields", ctx, "job1", mock.MatchedBy(func(updates []firestore.Update) bool {
			payments, ok := updateValue(updates, "payments")
			if !ok {
				return false
			}

			balance, ok := updateValue(updates, "balance")
			if !ok {
				return false
			}

			return assert.ObjectsAreEqual([]float64{2000}, payments) && balance == 2000.0
		})).Return(nil).Once()

		updated, err := s.AddPayment(ctx, "job1", 2000)

		assert.NoError(t, err)
		assert.Equal(t, 2000.0, updated.Balance)
		assert.Equal(t, []float64{2000}, updated.Payments)

		jobDAL.AssertExpectations(t)
	})

	t.Run("invalid amounts issue no write", func(t *testing.T) {
		for _, amount := range []float64{-5, 0} {
			s, jobDAL, _ := newJobServiceTest()

			jobDAL.On("GetJob", ctx, "job1").Return(ledgerJob(), nil).Once()

			_, err := s.AddPayment(ctx, "job1", amount)

			assert.ErrorIs(t, err, ledger.ErrInvalidAmount)

			jobDAL.AssertNotCalled(t, "UpdateJobFields", mock.Anything, mock.Anything, mock.Anything)
		}
	})
}

func TestJobService_RemovePayment(t *testing.T) {
	ctx := context.Background()

	s, jobDAL, _ := newJobServiceTest()

	job := ledgerJob()
	job.IsDepositPaid = true
	job.Payments = []float64{2000}

	jobDAL.On("GetJob", ctx, "job1").Return(job, nil).Once()
	jobDAL.On("UpdateJobFields", ctx, "job1", mock.MatchedBy(func(updates []firestore.Update) bool {
		balance, ok := updateValue(updates, "balance")
		return ok && balance == 4000.0
	})).Return(nil).Once()

	updated, err := s.RemovePayment(ctx, "job1", 0)

	assert.NoError(t, err)
	assert.Empty(t, updated.Payments)
	assert.Equal(t, 4000.0, updated.Balance)

	jobDAL.On("GetJob", ctx, "job1").Return(ledgerJob(), nil).Once()

	_, err = s.RemovePayment(ctx, "job1", 5)

	assert.ErrorIs(t, err, ledger.ErrIndexOutOfRange)

	jobDAL.AssertExpectations(t)
}

func TestJobService_SetDepositPaid(t *testing.T) {
	ctx := context.Background()

	s, jobDAL, _ := newJobServiceTest()

	jobDAL.On("GetJob", ctx, "job1").Return(ledgerJob(), nil).Once()
	jobDAL.On("UpdateJobFields", ctx, "job1", mock.MatchedBy(func(updates []firestore.Update) bool {
		balance, ok := updateValue(updates, "balance")
		return ok && balance == 4000.0
	})).Return(nil).Once()

	updated, err := s.SetDepositPaid(ctx, "job1", true)

	assert.NoError(t, err)
	assert.True(t, updated.IsDepositPaid)
	assert.Equal(t, 4000.0, updated.Balance)

	jobDAL.AssertExpectations(t)
}

func TestJobService_ChangeStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("entering completed stamps completedAt", func(t *testing.T) {
		s, jobDAL, _ := newJobServiceTest()

		job := &domain.Job{ID: "job1", Status: domain.StatusProduction}

		jobDAL.On("GetJob", ctx, "job1").Return(job, nil).Once()
		jobDAL.On("UpdateJobFields", ctx, "job1", mock.MatchedBy(func(updates []firestore.Update) bool {
			status, ok := updateValue(updates, "status")
			if !ok || status != domain.StatusCompleted {
				return false
			}

			completedAt, ok := updateValue(updates, "completedAt")
			return ok && completedAt.(*time.Time) != nil
		})).Return(nil).Once()

		updated, err := s.ChangeStatus(ctx, "job1", domain.StatusCompleted)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, updated.Status)
		assert.NotNil(t, updated.CompletedAt)

		jobDAL.AssertExpectations(t)
	})

	t.Run("leaving completed clears completedAt", func(t *testing.T) {
		s, jobDAL, _ := newJobServiceTest()

		stamped := time.Now().UTC()
		job := &domain.Job{ID: "job1", Status: domain.StatusCompleted, CompletedAt: &stamped}

		jobDAL.On("GetJob", ctx, "job1").Return(job, nil).Once()
		jobDAL.On("UpdateJobFields", ctx, "job1", mock.MatchedBy(func(updates []firestore.Update) bool {
			completedAt, ok := updateValue(updates, "completedAt")
			return ok && completedAt.(*time.Time) == nil
		})).Return(nil).Once()

		updated, err := s.ChangeStatus(ctx, "job1", domain.StatusDelinquentPayment)

		assert.NoError(t, err)
		assert.Nil(t, updated.CompletedAt)

		jobDAL.AssertExpectations(t)
	})

	t.Run("re-saving completed keeps the stamp", func(t *testing.T) {
		s, jobDAL, _ := newJobServiceTest()

		stamped := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
		job := &domain.Job{ID: "job1", Status: domain.StatusCompleted, CompletedAt: &stamped}

		jobDAL.On("GetJob", ctx, "job1").Return(job, nil).Once()
		jobDAL.On("UpdateJobFields", ctx, "job1", mock.Anything).Return(nil).Once()

		updated, err := s.ChangeStatus(ctx, "job1", domain.StatusCompleted)

		assert.NoError(t, err)
		if assert.NotNil(t, updated.CompletedAt) {
			assert.Equal(t, stamped, *updated.CompletedAt)
		}
	})

	t.Run("unknown status is rejected without a write", func(t *testing.T) {
		s, jobDAL, _ := newJobServiceTest()

		jobDAL.On("GetJob", ctx, "job1").Return(&domain.Job{ID: "job1", Status: domain.StatusLead}, nil).Once()

		_, err := s.ChangeStatus(ctx, "job1", "Archived")

		assert.Error(t, err)

		jobDAL.AssertNotCalled(t, "UpdateJobFields", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestJobService_UploadMedia(t *testing.T) {
	ctx := context.Background()

	mediaJob := func() *domain.Job {
		return &domain.Job{
			ID:                "job1",
			CompanyID:         "company1",
			FolderPermissions: map[string]bool{"inspection": true},
		}
	}

	t.Run("inherits folder default", func(t *testing.T) {
		s, jobDAL, storageMock := newJobServiceTest()

		jobDAL.On("GetJob", ctx, "job1").Return(mediaJob(), nil).Once()
		storageMock.On("Upload", ctx, mock.AnythingOfType("string"), mock.Anything, "image/jpeg").
			Return("https://storage.googleapis.com/bucket/object", nil).
			Once()
		jobDAL.On("UpdateJobFields", ctx, "job1", mock.MatchedBy(func(updates []firestore.Update) bool {
			assets, ok := updateValue(updates, "inspectionMedia")
			if !ok {
				return false
			}

			list := assets.([]domain.MediaAsset)
			return len(list) == 1 && list[0].Shared
		})).Return(nil).Once()

		asset, err := s.UploadMedia(ctx, &UploadMediaRequest{
			JobID:       "job1",
			Category:    domain.CategoryInspection,
			Name:        "north-slope.jpg",
			ContentType: "image/jpeg",
			Data:        []byte("jpeg"),
		})

		assert.NoError(t, err)
		assert.True(t, asset.Shared)

		jobDAL.AssertExpectations(t)
		storageMock.AssertExpectations(t)
	})

	t.Run("explicit override beats folder default", func(t *testing.T) {
		s, jobDAL, storageMock := newJobServiceTest()

		jobDAL.On("GetJob", ctx, "job1").Return(mediaJob(), nil).Once()
		storageMock.On("Upload", ctx, mock.AnythingOfType("string"), mock.Anything, "image/jpeg").
			Return("https://storage.googleapis.com/bucket/object", nil).
			Once()
		jobDAL.On("UpdateJobFields", ctx, "job1", mock.Anything).Return(nil).Once()

		override := false

		asset, err := s.UploadMedia(ctx, &UploadMediaRequest{
			JobID:       "job1",
			Category:    domain.CategoryInspection,
			ContentType: "image/jpeg",
			Data:        []byte("jpeg"),
			Shared:      &override,
		})

		assert.NoError(t, err)
		assert.False(t, asset.Shared)
	})

	t.Run("discarded when the job screen closed mid transfer", func(t *testing.T) {
		s, jobDAL, storageMock := newJobServiceTest()

		jobDAL.On("GetJob", ctx, "job1").Return(mediaJob(), nil).Once()
		storageMock.On("Upload", ctx, mock.AnythingOfType("string"), mock.Anything, "image/jpeg").
			Run(func(args mock.Arguments) {
				s.DiscardPendingUploads("job1")
			}).
			Return("https://storage.googleapis.com/bucket/object", nil).
			Once()
		storageMock.On("Delete", ctx, "https://storage.googleapis.com/bucket/object").
			Return(nil).
			Once()

		asset, err := s.UploadMedia(ctx, &UploadMediaRequest{
			JobID:       "job1",
			Category:    domain.CategoryInspection,
			ContentType: "image/jpeg",
			Data:        []byte("jpeg"),
		})

		assert.ErrorIs(t, err, ErrUploadDiscarded)
		assert.Nil(t, asset)

		jobDAL.AssertNotCalled(t, "UpdateJobFields", mock.Anything, mock.Anything, mock.Anything)
		storageMock.AssertExpectations(t)
	})

	t.Run("unknown category", func(t *testing.T) {
		s, _, _ := newJobServiceTest()

		_, err := s.UploadMedia(ctx, &UploadMediaRequest{
			JobID:    "job1",
			Category: "screenshots",
			Data:     []byte("x"),
		})

		assert.Error(t, err)
	})
}

func TestJobService_DeleteMedia(t *testing.T) {
	ctx := context.Background()

	job := func() *domain.Job {
		return &domain.Job{
			ID:        "job1",
			CompanyID: "company1",
			InstallMedia: []domain.MediaAsset{
				{ID: "a", URL: "https://storage.googleapis.com/bucket/a", Category: domain.CategoryInstall},
				{ID: "b", URL: "https://storage.googleapis.com/bucket/b", Category: domain.CategoryInstall},
			},
		}
	}

	t.Run("removes the asset then deletes the blob", func(t *testing.T) {
		s, jobDAL, storageMock := newJobServiceTest()

		jobDAL.On("GetJob", ctx, "job1").Return(job(), nil).Once()
		jobDAL.On("UpdateJobFields", ctx, "job1", mock.MatchedBy(func(updates []firestore.Update) bool {
			assets, ok := updateValue(updates, "installMedia")
			if !ok {
				return false
			}

			list := assets.([]domain.MediaAsset)
			return len(list) == 1 && list[0].ID == "b"
		})).Return(nil).Once()
		storageMock.On("Delete", ctx, "https://storage.googleapis.com/bucket/a").Return(nil).Once()

		err := s.DeleteMedia(ctx, "job1", "a")

		assert.NoError(t, err)

		jobDAL.AssertExpectations(t)
		storageMock.AssertExpectations(t)
	})

	t.Run("blob failure is swallowed", func(t *testing.T) {
		s, jobDAL, storageMock := newJobServiceTest()

		jobDAL.On("GetJob", ctx, "job1").Return(job(), nil).Once()
		jobDAL.On("UpdateJobFields", ctx, "job1", mock.Anything).Return(nil).Once()
		storageMock.On("Delete", ctx, mock.AnythingOfType("string")).
			Return(errors.New("storage unavailable")).
			Once()

		err := s.DeleteMedia(ctx, "job1", "a")

		assert.NoError(t, err)
	})
}

func TestJobService_DeleteJob(t *testing.T) {
	ctx := context.Background()

	s, jobDAL, storageMock := newJobServiceTest()

	job := &domain.Job{
		ID:        "job1",
		CompanyID: "company1",
		InspectionMedia: []domain.MediaAsset{
			{ID: "a", URL: "https://storage.googleapis.com/bucket/a"},
		},
		Documents: []domain.MediaAsset{
			{ID: "b", URL: "https://storage.googleapis.com/bucket/b"},
		},
	}

	jobDAL.On("GetJob", ctx, "job1").Return(job, nil).Once()
	jobDAL.On("DeleteJob", ctx, "job1").Return(nil).Once()
	storageMock.On("Delete", mock.Anything, "https://storage.googleapis.com/bucket/a").Return(nil).Once()
	storageMock.On("Delete", mock.Anything, "https://storage.googleapis.com/bucket/b").
		Return(errors.New("storage unavailable")).
		Once()

	err := s.DeleteJob(ctx, "job1")

	assert.NoError(t, err)

	jobDAL.AssertExpectations(t)
	storageMock.AssertExpectations(t)
}

func TestJobService_RecategorizeAsset(t *testing.T) {
	ctx := context.Background()

	s, jobDAL, _ := newJobServiceTest()

	job := &domain.Job{
		ID: "job1",
		InspectionMedia: []domain.MediaAsset{
			{ID: "a", Category: domain.CategoryInspection},
		},
	}

	jobDAL.On("GetJob", ctx, "job1").Return(job, nil).Once()
	jobDAL.On("UpdateJobFields", ctx, "job1", mock.MatchedBy(func(updates []firestore.Update) bool {
		source, ok := updateValue(updates, "inspectionMedia")
		if !ok {
			return false
		}

		target, ok := updateValue(updates, "documents")
		if !ok {
			return false
		}

		moved := target.([]domain.MediaAsset)
		return len(source.([]domain.MediaAsset)) == 0 &&
			len(moved) == 1 &&
			moved[0].Category == domain.CategoryDocument
	})).Return(nil).Once()

	err := s.RecategorizeAsset(ctx, "job1", "a", domain.CategoryDocument)

	assert.NoError(t, err)

	jobDAL.AssertExpectations(t)
}

func TestJobService_SetFolderDefault(t *testing.T) {
	ctx := context.Background()

	s, jobDAL, _ := newJobServiceTest()

	jobDAL.On("GetJob", ctx, "job1").Return(&domain.Job{ID: "job1"}, nil).Once()
	jobDAL.On("UpdateJobFields", ctx, "job1", mock.MatchedBy(func(updates []firestore.Update) bool {
		perms, ok := updateValue(updates, "folderPermissions")
		return ok && perms.(map[string]bool)["install"]
	})).Return(nil).Once()

	err := s.SetFolderDefault(ctx, "job1", domain.CategoryInstall, true)

	assert.NoError(t, err)

	jobDAL.AssertExpectations(t)
}

func TestJobService_UpdateJobDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("writes only the provided fields and dedupes trades", func(t *testing.T) {
		s, jobDAL, _ := newJobServiceTest()

		job := ledgerJob()
		job.JobNumber = "J-1"
		job.Description = "old roof"

		notes := "adjuster meeting moved"

		jobDAL.On("GetJob", ctx, "job1").Return(job, nil).Once()
		jobDAL.On("UpdateJobFields", ctx, "job1", mock.MatchedBy(func(updates []firestore.Update) bool {
			if len(updates) != 2 {
				return false
			}

			trades, ok := updateValue(updates, "trades")
			if !ok {
				return false
			}

			if !assert.ObjectsAreEqual([]string{"roofing", "gutters"}, trades) {
				return false
			}

			got, ok := updateValue(updates, "notes")

			return ok && got == notes
		})).Return(nil).Once()

		updated, err := s.UpdateJobDetails(ctx, "job1", &JobUpdate{
			Trades: []string{"roofing", "gutters", "roofing"},
			Notes:  &notes,
		})

		assert.NoError(t, err)
		assert.Equal(t, []string{"roofing", "gutters"}, updated.Trades)
		assert.Equal(t, notes, updated.Notes)
		assert.Equal(t, "J-1", updated.JobNumber)
		jobDAL.AssertExpectations(t)
	})

	t.Run("empty update skips the write", func(t *testing.T) {
		s, jobDAL, _ := newJobServiceTest()

		jobDAL.On("GetJob", ctx, "job1").Return(ledgerJob(), nil).Once()

		_, err := s.UpdateJobDetails(ctx, "job1", &JobUpdate{})

		assert.NoError(t, err)
		jobDAL.AssertNotCalled(t, "UpdateJobFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects an unknown job type", func(t *testing.T) {
		s, jobDAL, _ := newJobServiceTest()

		jobDAL.On("GetJob", ctx, "job1").Return(ledgerJob(), nil).Once()

		badType := domain.JobType("Warranty")

		_, err := s.UpdateJobDetails(ctx, "job1", &JobUpdate{JobType: &badType})

		assert.ErrorIs(t, err, ErrInvalidInput)
		jobDAL.AssertNotCalled(t, "UpdateJobFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("surfaces a failed write", func(t *testing.T) {
		s, jobDAL, _ := newJobServiceTest()

		jobDAL.On("GetJob", ctx, "job1").Return(ledgerJob(), nil).Once()
		jobDAL.On("UpdateJobFields", ctx, "job1", mock.Anything).Return(errors.New("rpc error")).Once()

		number := "J-2"

		_, err := s.UpdateJobDetails(ctx, "job1", &JobUpdate{JobNumber: &number})

		assert.ErrorIs(t, err, ErrPersistenceFailure)
	})
}

func TestJobService_CreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes balance from the submitted financials", func(t *testing.T) {
		s, jobDAL, _ := newJobServiceTest()

		var stored *domain.Job

		jobDAL.On("CreateJob", ctx, mock.AnythingOfType("*domain.Job")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*domain.Job)
			}).
			Return("job1", nil).Once()

		_, err := s.CreateJob(ctx, &domain.Job{
			CompanyID:      "company1",
			CustomerID:     "customer1",
			ContractAmount: 5000,
			DepositAmount:  1000,
			IsDepositPaid:  true,
			Balance:        0,
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(4000), stored.Balance)
	})

	t.Run("stamps completedAt on a completed create", func(t *testing.T) {
		s, jobDAL, _ := newJobServiceTest()

		var stored *domain.Job

		jobDAL.On("CreateJob", ctx, mock.AnythingOfType("*domain.Job")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*domain.Job)
			}).
			Return("job1", nil).Once()

		_, err := s.CreateJob(ctx, &domain.Job{
			CompanyID:  "company1",
			CustomerID: "customer1",
			Status:     domain.StatusCompleted,
		})

		assert.NoError(t, err)
		assert.NotNil(t, stored.CompletedAt)
	})

	t.Run("clears a stray completedAt on a non completed create", func(t *testing.T) {
		s, jobDAL, _ := newJobServiceTest()

		var stored *domain.Job

		jobDAL.On("CreateJob", ctx, mock.AnythingOfType("*domain.Job")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*domain.Job)
			}).
			Return("job1", nil).Once()

		stamp := time.Now().UTC()

		_, err := s.CreateJob(ctx, &domain.Job{
			CompanyID:   "company1",
			CustomerID:  "customer1",
			Status:      domain.StatusLead,
			CompletedAt: &stamp,
		})

		assert.NoError(t, err)
		assert.Nil(t, stored.CompletedAt)
		assert.Equal(t, domain.StatusLead, stored.Status)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		s, jobDAL, _ := newJobServiceTest()

		_, err := s.CreateJob(ctx, &domain.Job{
			CompanyID:  "company1",
			CustomerID: "customer1",
			Status:     domain.Status("Archived"),
		})

		assert.ErrorIs(t, err, pipeline.ErrUnknownStatus)
		jobDAL.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything)
	})
}

func TestLedgerForLoadedPaymentsCarryNoIDs(t *testing.T) {
	job := ledgerJob()
	job.Payments = []float64{250, 750}

	led := ledgerFor(job)

	for _, p := range led.Payments {
		assert.Empty(t, p.ID)
	}

	_, err := led.RemovePaymentByID("anything")
	assert.ErrorIs(t, err, ledger.ErrPaymentNotFound)
}
