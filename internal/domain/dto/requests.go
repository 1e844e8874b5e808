package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CreatePostRequest is the body of POST /rodut/v1/create-post, JSON or form
// encoded.
type CreatePostRequest struct {
	APIKey        string  `json:"api_key" form:"api_key"`
	Title         string  `json:"title" form:"title"`
	Content       string  `json:"content" form:"content"`
	FeaturedMedia MediaID `json:"featured_media,omitempty" form:"featured_media"`
}

// FeaturedMediaID returns the requested thumbnail, 0 meaning none.
func (r CreatePostRequest) FeaturedMediaID() int64 {
	return int64(r.FeaturedMedia)
}

// MediaID is a media reference sent by the plugin. It accepts a JSON number,
// a numeric string or null. Anything else, including negative and fractional
// garbage, decodes to 0 instead of failing the whole request.
type MediaID int64

func (m *MediaID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			*m = 0

			return nil
		}
	} else {
		s = string(data)
	}

	*m = parseMediaID(s)

	return nil
}

// UnmarshalParam lets the form binder use the same rules.
func (m *MediaID) UnmarshalParam(param string) error {
	*m = parseMediaID(param)

	return nil
}

func parseMediaID(s string) MediaID {
	s = strings.TrimSpace(s)

	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return MediaID(max(id, 0))
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < 0 || f >= math.MaxInt64 {
		return 0
	}

	return MediaID(f)
}
