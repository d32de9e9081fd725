package dal

import (
	"context"
	"fmt"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/monsalvellc/RoofingLeadApp/common"
	"github.com/monsalvellc/RoofingLeadApp/customer/domain"
	"github.com/monsalvellc/RoofingLeadApp/docstore/iface"
	"github.com/monsalvellc/RoofingLeadApp/docstore/mocks"
)

func setupCustomers() (*CustomersFirestore, *mocks.DocumentsHandler) {
	fs, err := firestore.NewClient(context.Background(),
		common.TestProjectID,
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
	if err != nil {
		panic(err)
	}

	dh := &mocks.DocumentsHandler{}

	return &CustomersFirestore{
		firestoreClientFun: func(ctx context.Context) *firestore.Client {
			return fs
		},
		documentsHandler: dh,
	}, dh
}

func TestNewCustomersFirestore(t *testing.T) {
	_, err := NewCustomersFirestore(context.Background(), common.TestProjectID)
	assert.NoError(t, err)

	d := NewCustomersFirestoreWithClient(nil)
	assert.NotNil(t, d)
}

func TestCustomersFirestore_GetCustomer(t *testing.T) {
	ctx := context.Background()
	d, dh := setupCustomers()

	dh.
		On("Get", mock.Anything, mock.AnythingOfType("*firestore.DocumentRef")).
		Return(func() iface.DocumentSnapshot {
			snap := &mocks.DocumentSnapshot{}
			snap.On("DataTo", mock.Anything).Return(nil)
			snap.On("Snapshot").Return(&firestore.DocumentSnapshot{})
			snap.On("ID").Return("testCustomerId")
			return snap
		}(), nil).
		Once()

	c, err := d.GetCustomer(ctx, "testCustomerId")

	assert.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, "testCustomerId", c.ID)

	dh.
		On("Get", mock.Anything, mock.AnythingOfType("*firestore.DocumentRef")).
		Return(func() iface.DocumentSnapshot {
			snap := &mocks.DocumentSnapshot{}
			snap.On("DataTo", mock.Anything).Return(fmt.Errorf("fail"))
			return snap
		}(), nil).
		Once()

	c, err = d.GetCustomer(ctx, "testCustomerId")

	assert.Error(t, err)
	assert.Nil(t, c)

	c, err = d.GetCustomer(ctx, "")

	assert.ErrorIs(t, err, ErrInvalidCustomerID)
	assert.Nil(t, c)

	dh.AssertExpectations(t)
}

func TestCustomersFirestore_UpdateCustomerFields(t *testing.T) {
	ctx := context.Background()
	d, dh := setupCustomers()

	dh.
		On("Update", mock.Anything, mock.AnythingOfType("*firestore.DocumentRef"), mock.MatchedBy(func(updates []firestore.Update) bool {
			return len(updates) == 2 && updates[len(updates)-1].Path == timeModifiedField
		})).
		Return(nil, nil).
		Once()

	err := d.UpdateCustomerFields(ctx, "testCustomerId", []firestore.Update{
		{Path: "phone", Value: "555-0101"},
	})

	assert.NoError(t, err)

	err = d.UpdateCustomerFields(ctx, "", nil)

	assert.ErrorIs(t, err, ErrInvalidCustomerID)

	dh.AssertExpectations(t)
}

func TestCustomersFirestore_SoftDeleteCustomer(t *testing.T) {
	ctx := context.Background()
	d, dh := setupCustomers()

	dh.
		On("Update", mock.Anything, mock.AnythingOfType("*firestore.DocumentRef"), mock.MatchedBy(func(updates []firestore.Update) bool {
			for _, u := range updates {
				if u.Path == deletedField && u.Value == true {
					return true
				}
			}
			return false
		})).
		Return(nil, nil).
		Once()

	err := d.SoftDeleteCustomer(ctx, "testCustomerId")

	assert.NoError(t, err)

	dh.AssertExpectations(t)
}

func TestCustomersFirestore_CreateCustomer(t *testing.T) {
	ctx := context.Background()
	d, dh := setupCustomers()

	dh.
		On("Create", mock.Anything, mock.AnythingOfType("*firestore.DocumentRef"), mock.AnythingOfType("*domain.Customer")).
		Return(nil, nil).
		Once()

	customer := &domain.Customer{
		CompanyID: "testCompanyId",
		FirstName: "Ana",
		LastName:  "Reyes",
	}

	id, err := d.CreateCustomer(ctx, customer)

	assert.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, customer.ID)
	assert.False(t, customer.TimeCreated.IsZero())

	dh.AssertExpectations(t)
}
