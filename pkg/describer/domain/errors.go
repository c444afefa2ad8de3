package domain

import "errors"

var (
	// ErrFileAccess the image file is missing, unreadable, or failed to be read to the end.
	ErrFileAccess = errors.New("file access error")
	// ErrTransport the request couldn't be completed, or the service replied with a non-success status.
	ErrTransport = errors.New("transport error")
	// ErrResponseShape the response body isn't valid JSON or lacks required fields.
	ErrResponseShape = errors.New("response shape error")
)
