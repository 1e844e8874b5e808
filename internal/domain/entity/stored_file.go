package entity

import "io"

// IncomingFile is an uploaded file part as the gateway received it. Size and
// DeclaredType come from the client and are validated, never trusted.
type IncomingFile struct {
	Filename     string
	DeclaredType string
	Size         int64
	Body         io.ReadSeeker
}

// StoredFile describes an object after it has been written to object storage.
type StoredFile struct {
	Bucket    string
	ObjectKey string
	Filename  string
	Size      int64
}

// CreatedPost is what a successful CreatePost yields.
type CreatedPost struct {
	ID  int64
	URL string
}

// UploadedMedia is what a successful UploadMedia yields.
type UploadedMedia struct {
	ID        int64
	SourceURL string
	MimeType  string
}

// AttachmentEvent is published once an attachment and its metadata are persisted.
type AttachmentEvent struct {
	AttachmentID int64  `json:"attachment_id"`
	Bucket       string `json:"bucket"`
	ObjectKey    string `json:"object_key"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
}
