package pipeline

import "github.com/pkg/errors"

var ErrUnknownStatus = errors.New("unknown job status")
