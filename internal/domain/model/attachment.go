package model

import "time"

type Attachment struct {
	ID        int64               `bson:"_id"`
	Title     string              `bson:"title"`
	Bucket    string              `bson:"bucket"`
	ObjectKey string              `bson:"object_key"`
	MimeType  string              `bson:"mime_type"`
	Size      int64               `bson:"size"`
	Status    string              `bson:"status"`
	ParentID  int64               `bson:"parent_id"`
	Metadata  *AttachmentMetadata `bson:"metadata"` // nil until generated
	CreatedAt time.Time           `bson:"created_at"`
}

type AttachmentMetadata struct {
	Width    int   `bson:"width"`
	Height   int   `bson:"height"`
	FileSize int64 `bson:"filesize"`
}
