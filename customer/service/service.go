package service

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/hashicorp/go-multierror"

	customerDal "github.com/monsalvellc/RoofingLeadApp/customer/dal"
	customerDomain "github.com/monsalvellc/RoofingLeadApp/customer/domain"
	"github.com/monsalvellc/RoofingLeadApp/customer/matcher"
	"github.com/monsalvellc/RoofingLeadApp/docstore"
	"github.com/monsalvellc/RoofingLeadApp/framework/connection"
	jobDal "github.com/monsalvellc/RoofingLeadApp/job/dal"
	jobDomain "github.com/monsalvellc/RoofingLeadApp/job/domain"
	"github.com/monsalvellc/RoofingLeadApp/logger"
)

type CustomerService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	customerDAL    customerDal.Customers
	jobDAL         jobDal.Jobs
}

func NewCustomerService(loggerProvider logger.Provider, conn *connection.Connection) *CustomerService {
	return &CustomerService{
		loggerProvider,
		conn,
		customerDal.NewCustomersFirestoreWithClient(conn.Firestore),
		jobDal.NewJobsFirestoreWithClient(conn.Firestore),
	}
}

func (s *CustomerService) GetCustomer(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
	customer, err := s.customerDAL.GetCustomer(ctx, customerID)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, ErrCustomerNotFound
		}

		return nil, err
	}

	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, companyID string) ([]*customerDomain.Customer, error) {
	return s.customerDAL.ListCustomers(ctx, companyID)
}

// CreateCustomer writes the customer and returns its id together with
// existing customers whose name matches. The candidates are advisory;
// duplicates are allowed and the write is never suppressed by a match.
func (s *CustomerService) CreateCustomer(ctx context.Context, customer *customerDomain.Customer) (string, []*customerDomain.Customer, error) {
	if customer == nil || customer.CompanyID == "" {
		return "", nil, ErrInvalidInput
	}

	if strings.TrimSpace(customer.FirstName) == "" && strings.TrimSpace(customer.LastName) == "" {
		return "", nil, ErrInvalidInput
	}

	candidates, err := s.FindCandidates(ctx, customer.CompanyID, customer.FullName())
	if err != nil {
		s.loggerProvider(ctx).Warningf("customer dedup lookup failed: %v", err)

		candidates = nil
	}

	id, err := s.customerDAL.CreateCustomer(ctx, customer)
	if err != nil {
		return "", nil, err
	}

	return id, candidates, nil
}

func (s *CustomerService) FindCandidates(ctx context.Context, companyID, nameQuery string) ([]*customerDomain.Customer, error) {
	customers, err := s.customerDAL.ListCustomers(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return matcher.FindCandidates(nameQuery, customers), nil
}

// CreateLead converts an incoming lead into a customer and a job. When
// req.CustomerID is set the job binds to that existing customer and no
// customer document is written. Otherwise the customer is created first;
// if the job write then fails the customer is NOT rolled back and the
// failure is returned as *OrphanedCustomerError carrying the new id.
func (s *CustomerService) CreateLead(ctx context.Context, req *LeadRequest) (*jobDomain.Job, error) {
	if req == nil || req.CompanyID == "" {
		return nil, ErrInvalidInput
	}

	customerID := req.CustomerID
	createdCustomer := false

	if customerID == "" {
		if req.Customer == nil {
			return nil, ErrInvalidInput
		}

		req.Customer.CompanyID = req.CompanyID

		id, _, err := s.CreateCustomer(ctx, req.Customer)
		if err != nil {
			return nil, err
		}

		customerID = id
		createdCustomer = true
	} else {
		if _, err := s.GetCustomer(ctx, customerID); err != nil {
			return nil, err
		}
	}

	jobType := req.JobType
	if jobType == "" {
		jobType = jobDomain.JobTypeRetail
	}

	job := &jobDomain.Job{
		CompanyID:  req.CompanyID,
		CustomerID: customerID,
		JobNumber:  req.JobNumber,
		JobType:    jobType,
		Status:     jobDomain.StatusLead,
		Trades:     req.Trades,
		Payments:   []float64{},
	}

	if _, err := s.jobDAL.CreateJob(ctx, job); err != nil {
		if createdCustomer {
			s.loggerProvider(ctx).Errorf("lead conversion orphaned customer %s: %v", customerID, err)

			return nil, &OrphanedCustomerError{CustomerID: customerID, Cause: err}
		}

		return nil, err
	}

	return job, nil
}

// DeleteCustomer soft deletes the customer unless jobs still reference
// it. Every blocking job is reported, not just the first.
func (s *CustomerService) DeleteCustomer(ctx context.Context, companyID, customerID string) error {
	if companyID == "" || customerID == "" {
		return ErrInvalidInput
	}

	jobs, err := s.jobDAL.ListJobsByCustomer(ctx, companyID, customerID)
	if err != nil {
		return err
	}

	var blockers *multierror.Error

	for _, job := range jobs {
		blockers = multierror.Append(blockers, &ActiveJobError{
			JobID:  job.ID,
			Status: string(job.Status),
		})
	}

	if err := blockers.ErrorOrNil(); err != nil {
		return err
	}

	return s.customerDAL.SoftDeleteCustomer(ctx, customerID)
}

// UpdateCustomer applies a partial edit. Nil fields are left untouched.
func (s *CustomerService) UpdateCustomer(ctx context.Context, customerID string, up *CustomerUpdate) (*customerDomain.Customer, error) {
	if customerID == "" || up == nil {
		return nil, ErrInvalidInput
	}

	customer, err := s.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var updates []firestore.Update

	if up.FirstName != nil {
		customer.FirstName = *up.FirstName
		updates = append(updates, firestore.Update{Path: "firstName", Value: customer.FirstName})
	}

	if up.LastName != nil {
		customer.LastName = *up.LastName
		updates = append(updates, firestore.Update{Path: "lastName", Value: customer.LastName})
	}

	if up.FirstName != nil || up.LastName != nil {
		if customer.FullName() == "" {
			return nil, ErrInvalidInput
		}
	}

	if up.Email != nil {
		customer.Email = *up.Email
		updates = append(updates, firestore.Update{Path: "email", Value: customer.Email})
	}

	if up.Phone != nil {
		customer.Phone = *up.Phone
		updates = append(updates, firestore.Update{Path: "phone", Value: customer.Phone})
	}

	if up.SecondaryPhone != nil {
		customer.SecondaryPhone = *up.SecondaryPhone
		updates = append(updates, firestore.Update{Path: "secondaryPhone", Value: customer.SecondaryPhone})
	}

	if up.Address != nil {
		customer.Address = *up.Address
		updates = append(updates, firestore.Update{Path: "address", Value: customer.Address})
	}

	if up.AltAddress != nil {
		customer.AltAddress = up.AltAddress
		updates = append(updates, firestore.Update{Path: "altAddress", Value: customer.AltAddress})
	}

	if up.Notes != nil {
		customer.Notes = *up.Notes
		updates = append(updates, firestore.Update{Path: "notes", Value: customer.Notes})
	}

	if len(updates) == 0 {
		return customer, nil
	}

	if err := s.customerDAL.UpdateCustomerFields(ctx, customerID, updates); err != nil {
		return nil, err
	}

	return customer, nil
}
