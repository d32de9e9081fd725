package storage

import "errors"

var (
	// ErrStorageFailure is the generic blob store failure. For deletes it is
	// logged and swallowed by callers; the document record is the source of
	// truth and a dangling blob is an accepted leak.
	ErrStorageFailure = errors.New("blob storage failure")
)
