package domain

import "time"

// Category partitions a job's media. The set is fixed; anything else is
// rejected with mediaperm.ErrUnknownCategory before a write is attempted.
type Category string

const (
	CategoryInspection Category = "inspection"
	CategoryInstall    Category = "install"
	CategoryDocument   Category = "document"
)

// Categories lists the valid media categories.
var Categories = []Category{
	CategoryInspection,
	CategoryInstall,
	CategoryDocument,
}

// ValidCategory reports whether c is one of the fixed media categories.
func ValidCategory(c Category) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}

	return false
}

// FieldForCategory returns the job document field that stores the
// category's media array.
func FieldForCategory(c Category) string {
	switch c {
	case CategoryInspection:
		return "inspectionMedia"
	case CategoryInstall:
		return "installMedia"
	case CategoryDocument:
		return "documents"
	}

	return ""
}

// MediaAsset is one uploaded photo or document on a job.
type MediaAsset struct {
	ID       string   `firestore:"id" json:"id"`
	URL      string   `firestore:"url" json:"url"`
	Category Category `firestore:"category" json:"category"`

	// Name is required for documents, optional for photos.
	Name string `firestore:"name,omitempty" json:"name,omitempty"`

	// Shared marks the asset visible to the customer. Its value is fixed at
	// creation from the folder default unless explicitly overridden, and
	// folder default changes never touch it afterwards.
	Shared bool `firestore:"shared" json:"shared"`

	TimeCreated time.Time `firestore:"timeCreated" json:"timeCreated"`
}
