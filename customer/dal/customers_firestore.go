package dal

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/monsalvellc/RoofingLeadApp/customer/domain"
	"github.com/monsalvellc/RoofingLeadApp/docstore"
	"github.com/monsalvellc/RoofingLeadApp/docstore/iface"
	"github.com/monsalvellc/RoofingLeadApp/framework/connection"
)

const (
	customersCollection = "customers"

	companyField      = "companyId"
	deletedField      = "deleted"
	timeModifiedField = "timeModified"
)

// CustomersFirestore is used to interact with customers stored on Firestore.
type CustomersFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   iface.DocumentsHandler
}

// NewCustomersFirestore returns a new CustomersFirestore instance with given project id.
func NewCustomersFirestore(ctx context.Context, projectID string) (*CustomersFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewCustomersFirestoreWithClient(
		func(_ context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewCustomersFirestoreWithClient returns a new CustomersFirestore using given client.
func NewCustomersFirestoreWithClient(fun connection.FirestoreFromContextFun) *CustomersFirestore {
	return &CustomersFirestore{
		firestoreClientFun: fun,
		documentsHandler:   docstore.DocumentHandler{},
	}
}

func (d *CustomersFirestore) GetRef(ctx context.Context, ID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(customersCollection).Doc(ID)
}

// GetCustomer returns customer's data.
func (d *CustomersFirestore) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}

	doc := d.GetRef(ctx, customerID)

	snap, err := d.documentsHandler.Get(ctx, doc)
	if err != nil {
		return nil, err
	}

	var customer domain.Customer

	if err := snap.DataTo(&customer); err != nil {
		return nil, err
	}

	customer.Snapshot = snap.Snapshot()
	customer.ID = snap.ID()

	return &customer, nil
}

// ListCustomers returns the company's customers, soft-deleted records
// excluded, in store order.
func (d *CustomersFirestore) ListCustomers(ctx context.Context, companyID string) ([]*domain.Customer, error) {
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}

	iter := d.firestoreClientFun(ctx).Collection(customersCollection).
		Where(companyField, "==", companyID).
		Where(deletedField, "==", false).
		Documents(ctx)

	snaps, err := d.documentsHandler.GetAll(iter)
	if err != nil {
		return nil, err
	}

	var customers []*domain.Customer

	for _, snap := range snaps {
		var customer domain.Customer

		if err := snap.DataTo(&customer); err != nil {
			return nil, err
		}

		customer.Snapshot = snap.Snapshot()
		customer.ID = snap.ID()

		customers = append(customers, &customer)
	}

	return customers, nil
}

// CreateCustomer writes a new customer document and returns its id.
func (d *CustomersFirestore) CreateCustomer(ctx context.Context, customer *domain.Customer) (string, error) {
	ref := d.firestoreClientFun(ctx).Collection(customersCollection).NewDoc()

	now := time.Now().UTC()
	customer.TimeCreated = now
	customer.TimeModified = now

	if _, err := d.documentsHandler.Create(ctx, ref, customer); err != nil {
		return "", err
	}

	customer.ID = ref.ID

	return ref.ID, nil
}

// UpdateCustomerFields applies a partial-field merge to the customer
// document; it never overwrites the whole record.
func (d *CustomersFirestore) UpdateCustomerFields(ctx context.Context, customerID string, updates []firestore.Update) error {
	if customerID == "" {
		return ErrInvalidCustomerID
	}

	updates = append(updates, firestore.Update{Path: timeModifiedField, Value: time.Now().UTC()})

	_, err := d.documentsHandler.Update(ctx, d.GetRef(ctx, customerID), updates)

	return err
}

// SoftDeleteCustomer marks the record deleted; it stays in the store for
// history and is excluded from listings.
func (d *CustomersFirestore) SoftDeleteCustomer(ctx context.Context, customerID string) error {
	return d.UpdateCustomerFields(ctx, customerID, []firestore.Update{
		{Path: deletedField, Value: true},
	})
}
