package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/monsalvellc/RoofingLeadApp/job/domain"
)

func TestObjectPathRoundTrip(t *testing.T) {
	path := ObjectPath("company1", "job1", domain.CategoryInspection, "asset1")
	assert.Equal(t, "company1/job1/inspection/asset1", path)

	url := publicURL("test-bucket", path)

	got, ok := objectFromURL("test-bucket", url)
	assert.True(t, ok)
	assert.Equal(t, path, got)

	_, ok = objectFromURL("other-bucket", url)
	assert.False(t, ok)
}
