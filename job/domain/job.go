package domain

import (
	"time"

	"cloud.google.com/go/firestore"
)

// JobType distinguishes retail work from insurance claim work.
type JobType string

const (
	JobTypeRetail    JobType = "Retail"
	JobTypeInsurance JobType = "Insurance"
)

// Status is a job lifecycle stage. The canonical order is informational
// (list sorting, progress display); transitions are not restricted to it.
type Status string

const (
	StatusLead              Status = "Lead"
	StatusRetail            Status = "Retail"
	StatusInspected         Status = "Inspected"
	StatusClaimFiled        Status = "Claim Filed"
	StatusMetWithAdjuster   Status = "Met with Adjuster"
	StatusPartialApproval   Status = "Partial Approval"
	StatusFullApproval      Status = "Full Approval"
	StatusProduction        Status = "Production"
	StatusPendingPayment    Status = "Pending Payment"
	StatusDelinquentPayment Status = "Delinquent Payment"
	StatusCompleted         Status = "Completed"
)

// Statuses lists every job status in canonical pipeline order.
var Statuses = []Status{
	StatusLead,
	StatusRetail,
	StatusInspected,
	StatusClaimFiled,
	StatusMetWithAdjuster,
	StatusPartialApproval,
	StatusFullApproval,
	StatusProduction,
	StatusPendingPayment,
	StatusDelinquentPayment,
	StatusCompleted,
}

// InsuranceDetails is present only on insurance jobs.
type InsuranceDetails struct {
	Carrier        string     `firestore:"carrier" json:"carrier"`
	ClaimNumber    string     `firestore:"claimNumber" json:"claimNumber"`
	Deductible     float64    `firestore:"deductible" json:"deductible"`
	AdjusterName   string     `firestore:"adjusterName" json:"adjusterName"`
	AdjusterPhone  string     `firestore:"adjusterPhone" json:"adjusterPhone"`
	AdjusterEmail  string     `firestore:"adjusterEmail" json:"adjusterEmail"`
	DateOfLoss     *time.Time `firestore:"dateOfLoss" json:"dateOfLoss"`
	DateDiscovered *time.Time `firestore:"dateDiscovered" json:"dateDiscovered"`
}

// Job is a unit of work for one customer: lifecycle status, financials
// and media. It belongs to exactly one customer and one company.
type Job struct {
	CompanyID  string  `firestore:"companyId" json:"companyId"`
	CustomerID string  `firestore:"customerId" json:"customerId"`
	JobNumber  string  `firestore:"jobNumber" json:"jobNumber"`
	JobType    JobType `firestore:"jobType" json:"jobType"`
	Status     Status  `firestore:"status" json:"status"`

	// CompletedAt is non-nil if and only if Status is Completed.
	CompletedAt *time.Time `firestore:"completedAt" json:"completedAt"`

	Trades      []string          `firestore:"trades" json:"trades"`
	Description string            `firestore:"description" json:"description"`
	Notes       string            `firestore:"notes" json:"notes"`
	Insurance   *InsuranceDetails `firestore:"insurance,omitempty" json:"insurance,omitempty"`

	ContractAmount float64 `firestore:"contractAmount" json:"contractAmount"`
	DepositAmount  float64 `firestore:"depositAmount" json:"depositAmount"`
	IsDepositPaid  bool    `firestore:"isDepositPaid" json:"isDepositPaid"`

	// Payments is an ordered, append-only list of amounts. Entries have no
	// identity on the wire; removal is positional. Two sessions mutating the
	// list concurrently race at the document level (last write wins) and an
	// entry can be lost; there is no cross-session lock.
	Payments []float64 `firestore:"payments" json:"payments"`
	Balance  float64   `firestore:"balance" json:"balance"`

	InspectionMedia []MediaAsset `firestore:"inspectionMedia" json:"inspectionMedia"`
	InstallMedia    []MediaAsset `firestore:"installMedia" json:"installMedia"`
	Documents       []MediaAsset `firestore:"documents" json:"documents"`

	// FolderPermissions maps a media category to its default customer
	// visibility for new uploads. A category absent from the map is not
	// shared.
	FolderPermissions map[string]bool `firestore:"folderPermissions" json:"folderPermissions"`

	TimeCreated  time.Time `firestore:"timeCreated" json:"timeCreated"`
	TimeModified time.Time `firestore:"timeModified" json:"timeModified"`

	Snapshot *firestore.DocumentSnapshot `firestore:"-" json:"-"`
	ID       string                      `firestore:"-" json:"id"`
}

// MediaByCategory returns the job's asset list for the given category.
func (j *Job) MediaByCategory(category Category) []MediaAsset {
	switch category {
	case CategoryInspection:
		return j.InspectionMedia
	case CategoryInstall:
		return j.InstallMedia
	case CategoryDocument:
		return j.Documents
	}

	return nil
}

// AllMedia returns every asset on the job across categories.
func (j *Job) AllMedia() []MediaAsset {
	assets := make([]MediaAsset, 0, len(j.InspectionMedia)+len(j.InstallMedia)+len(j.Documents))
	assets = append(assets, j.InspectionMedia...)
	assets = append(assets, j.InstallMedia...)
	assets = append(assets, j.Documents...)

	return assets
}
