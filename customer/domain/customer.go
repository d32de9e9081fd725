package domain

import (
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/genproto/googleapis/type/latlng"
)

// Address is a postal address attached to a customer or a job site.
type Address struct {
	Street string `firestore:"street" json:"street"`
	City   string `firestore:"city" json:"city"`
	State  string `firestore:"state" json:"state"`
	Zip    string `firestore:"zip" json:"zip"`
}

// Customer is a company-scoped customer record. A physical customer is
// created at most once; deduplication is advisory (matcher at job-creation
// time), not a store-level uniqueness constraint.
type Customer struct {
	CompanyID      string         `firestore:"companyId" json:"companyId"`
	FirstName      string         `firestore:"firstName" json:"firstName"`
	LastName       string         `firestore:"lastName" json:"lastName"`
	Email          string         `firestore:"email" json:"email"`
	Phone          string         `firestore:"phone" json:"phone"`
	SecondaryPhone string         `firestore:"secondaryPhone,omitempty" json:"secondaryPhone,omitempty"`
	Address        Address        `firestore:"address" json:"address"`
	AltAddress     *Address       `firestore:"altAddress,omitempty" json:"altAddress,omitempty"`
	Notes          string         `firestore:"notes" json:"notes"`
	Location       *latlng.LatLng `firestore:"location,omitempty" json:"location,omitempty"`
	Deleted        bool           `firestore:"deleted" json:"deleted"`
	TimeCreated    time.Time      `firestore:"timeCreated" json:"timeCreated"`
	TimeModified   time.Time      `firestore:"timeModified" json:"timeModified"`

	Snapshot *firestore.DocumentSnapshot `firestore:"-" json:"-"`
	ID       string                      `firestore:"-" json:"id"`
}

// FullName returns the customer's display name.
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
