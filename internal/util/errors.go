package util

import "errors"

var (
	ErrBucketNotConfigured = errors.New("storage bucket not configured")
)
