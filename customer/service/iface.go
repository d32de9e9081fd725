package service

import (
	"context"

	customerDomain "github.com/monsalvellc/RoofingLeadApp/customer/domain"
	jobDomain "github.com/monsalvellc/RoofingLeadApp/job/domain"
)

// LeadRequest describes a lead conversion. When CustomerID is set the
// lead binds to the existing customer and the customer fields are
// ignored; otherwise a customer is created first.
type LeadRequest struct {
	CompanyID  string
	CustomerID string
	Customer   *customerDomain.Customer
	JobNumber  string
	JobType    jobDomain.JobType
	Trades     []string
}

// CustomerUpdate is a partial edit of a customer. Nil fields are left
// untouched.
type CustomerUpdate struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Phone          *string
	SecondaryPhone *string
	Address        *customerDomain.Address
	AltAddress     *customerDomain.Address
	Notes          *string
}

//go:generate mockery --name ICustomerService --output ./mocks
type ICustomerService interface {
	GetCustomer(ctx context.Context, customerID string) (*customerDomain.Customer, error)
	ListCustomers(ctx context.Context, companyID string) ([]*customerDomain.Customer, error)
	CreateCustomer(ctx context.Context, customer *customerDomain.Customer) (string, []*customerDomain.Customer, error)
	FindCandidates(ctx context.Context, companyID, nameQuery string) ([]*customerDomain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, up *CustomerUpdate) (*customerDomain.Customer, error)
	CreateLead(ctx context.Context, req *LeadRequest) (*jobDomain.Job, error)
	DeleteCustomer(ctx context.Context, companyID, customerID string) error
}
