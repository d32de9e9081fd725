package service

import (
	"github.com/pkg/errors"

	"github.com/monsalvellc/RoofingLeadApp/job/mediaperm"
)

var (
	ErrJobNotFound     = errors.New("job not found")
	ErrInvalidInput    = errors.New("invalid job input")
	ErrUploadDiscarded = errors.New("upload discarded, job no longer open")

	// ErrPersistenceFailure wraps document store write failures. The
	// in-memory state was valid when the write was issued; the caller may
	// retry the whole operation.
	ErrPersistenceFailure = errors.New("job write failed")

	ErrAssetNotFound = mediaperm.ErrAssetNotFound
)

func wrapPersistence(err error) error {
	if err == nil {
		return nil
	}

	return errors.Wrapf(ErrPersistenceFailure, "%s", err)
}
