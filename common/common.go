package common

import (
	"os"

	"github.com/gin-gonic/gin"
)

var (
	// Production flag indicating if app is running against the production project
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool

	ProjectID string

	MediaBucket string
)

const (
	productionProject = "roofing-lead-app"

	// TestProjectID is the project tests run against (firestore emulator).
	TestProjectID = "roofing-lead-app-dev"
)

func init() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")

	IsLocalhost = gin.Mode() != gin.ReleaseMode
	Production = ProjectID == productionProject && !IsLocalhost

	MediaBucket = GetEnv("MEDIA_BUCKET", ProjectID+"-media")
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
