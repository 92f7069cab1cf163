package domain

import "errors"

var (
	// ErrNotFound marks a logical lookup miss. It is a normal result, not a
	// storage fault, and callers map it to a 404.
	ErrNotFound = errors.New("record not found")

	// ErrStorageUnavailable wraps any driver or network level failure. It is
	// never retried inside the store.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUnsupportedMediaType rejects non-image avatar uploads.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrPayloadTooLarge rejects avatar uploads above the size limit.
	ErrPayloadTooLarge = errors.New("payload too large")
)
