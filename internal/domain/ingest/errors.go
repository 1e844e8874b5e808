package ingest

import (
	"errors"
	"net/http"
)

// Kind classifies why an ingest request failed.
type Kind int

const (
	HostError Kind = iota
	AccessDenied
	InvalidCredential
	EmptyContent
	NoFile
	PayloadTooLarge
	UnsupportedType
	NotFound
)

var kindNames = map[Kind]string{
	HostError:         "host_error",
	AccessDenied:      "access_denied",
	InvalidCredential: "invalid_credential",
	EmptyContent:      "empty_content",
	NoFile:            "no_file",
	PayloadTooLarge:   "payload_too_large",
	UnsupportedType:   "unsupported_type",
	NotFound:          "not_found",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return "unknown"
}

// Status is the HTTP status code a kind is rendered with.
func (k Kind) Status() int {
	switch k {
	case AccessDenied, EmptyContent, NoFile, PayloadTooLarge, UnsupportedType:
		return http.StatusBadRequest
	case InvalidCredential:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is the only error type that crosses the gateway boundary.
// Message is safe to show to callers; Cause is for logs only.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// As extracts an *Error from err. Anything else is treated as a host failure.
func As(err error) *Error {
	var ie *Error
	if errors.As(err, &ie) {
		return ie
	}

	return Wrap(HostError, "Internal error", err)
}

// Public messages, kept as the plugin sent them.
const (
	MsgAccessDenied      = "Access denied"
	MsgInvalidCredential = "Invalid api key"
	MsgEmptyContent      = "Content is required"
	MsgNoFile            = "No file uploaded"
	MsgPayloadTooLarge   = "File size exceeds limit"
	MsgBodyTooLarge      = "Request body exceeds limit"
	MsgUnsupportedType   = "Unsupported file type"
	MsgNoAdministrator   = "No administrator found"
	MsgCreatePostFailed  = "Failed to create post"
	MsgFeaturedFailed    = "Failed to set featured media"
	MsgUploadFailed      = "Failed to upload file"
	MsgTitleFailed       = "Failed to read site title"
)
