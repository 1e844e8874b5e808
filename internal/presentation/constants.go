package presentation

const (
	APIPrefix = "/rodut/v1"

	VersionPath     = "/version"
	TitlePath       = "/title"
	CreatePostPath  = "/create-post"
	UploadMediaPath = "/upload-media"
	HealthPath      = "/health"
	MetricsPath     = "/metrics"

	APIKeyField = "api_key"
	FileField   = "file"
	TypeKey     = "Content-Type"

	// ErrorKey holds the *ingest.Error a handler answered with, for middleware.
	ErrorKey = "ingest_error"

	// MultipartMemory is how much of a multipart body is kept in memory;
	// the rest is spooled to temporary files.
	MultipartMemory int64 = 32 << 20

	// MultipartOverhead is the slack allowed on top of the file size limit
	// for boundaries, headers and the other form fields.
	MultipartOverhead int64 = 1 << 20
)

// Operation names used as metric labels.
const (
	OpVersion     = "version"
	OpTitle       = "title"
	OpCreatePost  = "create_post"
	OpUploadMedia = "upload_media"
)
