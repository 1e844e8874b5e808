package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"rodut/internal/application/guard"
	"rodut/internal/application/usecase/abstraction"
	"rodut/internal/domain/dto"
	"rodut/internal/domain/entity"
	"rodut/internal/domain/ingest"
	"rodut/internal/presentation"
)

type UploadHandler struct {
	uploader  abstraction.Uploader
	bodyLimit int64
}

// NewUploadHandler caps the whole request body at maxFileSize plus multipart overhead.
func NewUploadHandler(uploader abstraction.Uploader, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		uploader:  uploader,
		bodyLimit: maxFileSize + presentation.MultipartOverhead,
	}
}

// HandleUpload handles POST /rodut/v1/upload-media.
func (h *UploadHandler) HandleUpload(c echo.Context) error {
	req := c.Request()
	req.Body = http.MaxBytesReader(c.Response(), req.Body, h.bodyLimit)

	if err := req.ParseMultipartForm(presentation.MultipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return respondError(c, ingest.New(ingest.PayloadTooLarge, ingest.MsgPayloadTooLarge))
		}

		// Not a usable multipart body: there is no file, and at most a
		// urlencoded key.
		logger.Debug("upload body is not multipart", "err", err)

		return h.upload(c, req.PostFormValue(presentation.APIKeyField), nil)
	}
	defer func() {
		if err := req.MultipartForm.RemoveAll(); err != nil {
			logger.Warn("failed to remove multipart temp files", "err", err)
		}
	}()

	key := req.FormValue(presentation.APIKeyField)

	file, header, err := req.FormFile(presentation.FileField)
	if err != nil {
		return h.upload(c, key, nil)
	}
	defer file.Close()

	return h.upload(c, key, incomingFile(file, header))
}

func (h *UploadHandler) upload(c echo.Context, key string, file *entity.IncomingFile) error {
	media, err := h.uploader.UploadMedia(c.Request().Context(), guard.ClientIP(c.Request()), key, file)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.UploadMediaResponse{
		ID:        media.ID,
		SourceURL: media.SourceURL,
		MimeType:  media.MimeType,
	})
}

func incomingFile(file multipart.File, header *multipart.FileHeader) *entity.IncomingFile {
	return &entity.IncomingFile{
		Filename:     header.Filename,
		DeclaredType: header.Header.Get(presentation.TypeKey),
		Size:         header.Size,
		Body:         file,
	}
}
