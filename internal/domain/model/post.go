package model

import "time"

const (
	PostStatusPublish = "publish"
	PostStatusInherit = "inherit"
)

type Post struct {
	ID          int64     `bson:"_id"`
	Title       string    `bson:"title"`
	Content     string    `bson:"content"`
	Status      string    `bson:"status"`
	AuthorID    int64     `bson:"author_id"`
	ThumbnailID int64     `bson:"thumbnail_id"`
	CreatedAt   time.Time `bson:"created_at"`
}
