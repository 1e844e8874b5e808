package validator

import (
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"rodut/internal/domain/ingest"
)

const (
	// DefaultMaxSize is 1 GiB; a file of exactly this size is accepted.
	DefaultMaxSize int64 = 1 << 30

	// SniffLength is how many leading bytes are inspected for magic numbers.
	SniffLength = 3072
)

// DefaultAllowedTypes is the set of media types accepted for upload.
var DefaultAllowedTypes = []string{"image/jpeg", "image/png", "video/mp4"}

// Upload checks size, the client declared type and the sniffed type.
type Upload struct {
	maxSize int64
	allowed map[string]struct{}
}

func NewUpload(maxSize int64, allowedTypes []string) *Upload {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	if len(allowedTypes) == 0 {
		allowedTypes = DefaultAllowedTypes
	}

	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[normalize(t)] = struct{}{}
	}

	return &Upload{maxSize: maxSize, allowed: allowed}
}

func (u *Upload) MaxSize() int64 { return u.maxSize }

// Validate returns the sniffed media type when every check passes.
// head should hold the first SniffLength bytes of the file (or all of it).
func (u *Upload) Validate(head []byte, declaredType string, size int64) (string, error) {
	if size > u.maxSize {
		return "", ingest.New(ingest.PayloadTooLarge, ingest.MsgPayloadTooLarge)
	}

	if !u.Allowed(declaredType) {
		return "", ingest.New(ingest.UnsupportedType, ingest.MsgUnsupportedType)
	}

	sniffed, ok := u.sniff(head)
	if !ok {
		return "", ingest.New(ingest.UnsupportedType, ingest.MsgUnsupportedType)
	}

	return sniffed, nil
}

// Allowed reports whether a media type (parameters ignored) is accepted.
func (u *Upload) Allowed(mediaType string) bool {
	_, ok := u.allowed[normalize(mediaType)]

	return ok
}

func (u *Upload) sniff(head []byte) (string, bool) {
	if len(head) > SniffLength {
		head = head[:SniffLength]
	}

	detected := mimetype.Detect(head)
	for allowed := range u.allowed {
		if detected.Is(allowed) {
			return allowed, true
		}
	}

	return detected.String(), false
}

func normalize(mediaType string) string {
	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		return parsed
	}

	return strings.ToLower(strings.TrimSpace(mediaType))
}
