package storage

import (
	"fmt"
	"strings"

	"github.com/monsalvellc/RoofingLeadApp/job/domain"
)

const publicURLPrefix = "https://storage.googleapis.com/"

// ObjectPath namespaces a media object under its company, job (or lead
// draft) and category so blobs stay attributable when records move.
func ObjectPath(companyID, jobID string, category domain.Category, assetID string) string {
	return fmt.Sprintf("%s/%s/%s/%s", companyID, jobID, category, assetID)
}

func publicURL(bucket, objectPath string) string {
	return publicURLPrefix + bucket + "/" + objectPath
}

func objectFromURL(bucket, url string) (string, bool) {
	prefix := publicURLPrefix + bucket + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}

	return strings.TrimPrefix(url, prefix), true
}
