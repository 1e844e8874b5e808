package utils

import (
	"path/filepath"
	"strings"
)

// mimeTypeToExtension maps the media types a content host accepts to their canonical extension.
var mimeTypeToExtension = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"video/mp4":  ".mp4",
	"video/webm": ".webm",
	"audio/mpeg": ".mp3",
	"text/plain": ".txt",
}

// extensionToMIMEType is the reverse lookup, including aliases.
var extensionToMIMEType = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".jpe":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".mp4":  "video/mp4",
	".m4v":  "video/mp4",
	".webm": "video/webm",
	".mp3":  "audio/mpeg",
	".txt":  "text/plain",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove charset if present (e.g., "text/plain; charset=utf-8")
	cleaned := strings.TrimSpace(strings.Split(mimeType, ";")[0])
	if ext, ok := mimeTypeToExtension[strings.ToLower(cleaned)]; ok {
		return ext
	}

	return ".bin"
}

// MimeTypeFromFilename resolves a type from the file name's extension alone.
// It returns "" for unknown extensions.
func MimeTypeFromFilename(name string) string {
	return extensionToMIMEType[strings.ToLower(filepath.Ext(name))]
}

// SanitizeFilename reduces a client supplied name to a safe base name made of
// letters, digits, '.', '-' and '_'. Runs of other characters become a single '-'.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	dash := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_':
			b.WriteRune(r)
			dash = false
		default:
			if !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}

	out := strings.Trim(b.String(), ".-")
	if out == "" {
		return "file"
	}

	return out
}

// EnsureExtension makes name end in an extension that resolves to mimeType.
// A missing or mismatched extension is replaced by the canonical one.
func EnsureExtension(name, mimeType string) string {
	if MimeTypeFromFilename(name) == mimeType {
		return name
	}

	return strings.TrimSuffix(name, filepath.Ext(name)) + GetExtensionFromMimeType(mimeType)
}
