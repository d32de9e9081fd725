package dal

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/monsalvellc/RoofingLeadApp/customer/domain"
)

//go:generate mockery --name Customers --output ./mocks
type Customers interface {
	GetRef(ctx context.Context, ID string) *firestore.DocumentRef
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, companyID string) ([]*domain.Customer, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) (string, error)
	UpdateCustomerFields(ctx context.Context, customerID string, updates []firestore.Update) error
	SoftDeleteCustomer(ctx context.Context, customerID string) error
}
