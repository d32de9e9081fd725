package service

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/monsalvellc/RoofingLeadApp/job/domain"
	"github.com/monsalvellc/RoofingLeadApp/job/ledger"
)

const (
	paymentsField       = "payments"
	balanceField        = "balance"
	contractAmountField = "contractAmount"
	depositAmountField  = "depositAmount"
	isDepositPaidField  = "isDepositPaid"
)

// ledgerFor rebuilds the ledger from the persisted fields. The wire
// format stores bare amounts, so loaded entries carry no ids; id-based
// removal only applies to entries added within the same ledger value.
func ledgerFor(job *domain.Job) ledger.Ledger {
	return ledger.New(job.ContractAmount, job.DepositAmount, job.IsDepositPaid, job.Payments, nil)
}

// applyLedger persists every ledger field in one partial write and
// returns the job with the same state applied. Writing the whole set
// together keeps the stored balance consistent with its inputs.
func (s *JobService) applyLedger(ctx context.Context, job *domain.Job, led ledger.Ledger) (*domain.Job, error) {
	updates := []firestore.Update{
		{Path: contractAmountField, Value: led.ContractAmount},
		{Path: depositAmountField, Value: led.DepositAmount},
		{Path: isDepositPaidField, Value: led.IsDepositPaid},
		{Path: paymentsField, Value: led.Amounts()},
		{Path: balanceField, Value: led.Balance},
	}

	if err := s.jobDAL.UpdateJobFields(ctx, job.ID, updates); err != nil {
		return nil, wrapPersistence(err)
	}

	job.ContractAmount = led.ContractAmount
	job.DepositAmount = led.DepositAmount
	job.IsDepositPaid = led.IsDepositPaid
	job.Payments = led.Amounts()
	job.Balance = led.Balance

	return job, nil
}

func (s *JobService) AddPayment(ctx context.Context, jobID string, amount float64) (*domain.Job, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	led, err := ledgerFor(job).AddPayment(uuid.NewString(), amount)
	if err != nil {
		return nil, err
	}

	return s.applyLedger(ctx, job, led)
}

// RemovePayment removes by position, matching the wire format which
// stores bare amounts. Concurrent sessions editing the same list race at
// the document level (last write wins).
func (s *JobService) RemovePayment(ctx context.Context, jobID string, index int) (*domain.Job, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	led, err := ledgerFor(job).RemovePayment(index)
	if err != nil {
		return nil, err
	}

	return s.applyLedger(ctx, job, led)
}

func (s *JobService) SetDepositPaid(ctx context.Context, jobID string, paid bool) (*domain.Job, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	return s.applyLedger(ctx, job, ledgerFor(job).SetDepositPaid(paid))
}

func (s *JobService) SetContractAmount(ctx context.Context, jobID string, amount float64) (*domain.Job, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	led, err := ledgerFor(job).SetContractAmount(amount)
	if err != nil {
		return nil, err
	}

	return s.applyLedger(ctx, job, led)
}

func (s *JobService) SetDepositAmount(ctx context.Context, jobID string, amount float64) (*domain.Job, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	led, err := ledgerFor(job).SetDepositAmount(amount)
	if err != nil {
		return nil, err
	}

	return s.applyLedger(ctx, job, led)
}
