package service

import "errors"

// MaxUploadSize is the admission bound for enquiry attachments: uploads larger
// than this are rejected before any storage or database write.
const MaxUploadSize = 2 << 20 // 2 MiB

// Closed set of error variants produced by the service layer. Handlers match
// these exhaustively; anything else is a persistence failure and maps to a
// generic server error.
var (
	ErrValidation   = errors.New("missing or invalid required fields")
	ErrNotFound     = errors.New("record not found")
	ErrFileTooLarge = errors.New("file exceeds maximum allowed size")
)
