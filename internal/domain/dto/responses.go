package dto

type VersionResponse struct {
	Version string `json:"version"`
}

type TitleResponse struct {
	Title string `json:"title"`
}

type CreatePostResponse struct {
	Message string `json:"message"`
	PostID  int64  `json:"post_id"`
	PostURL string `json:"post_url"`
}

type UploadMediaResponse struct {
	ID        int64  `json:"id"`
	SourceURL string `json:"source_url"`
	MimeType  string `json:"mime_type"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
