package mediaperm

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown media category")
	ErrAssetNotFound   = errors.New("media asset not found")
)
