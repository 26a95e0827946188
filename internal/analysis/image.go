package analysis

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeDataURL splits a base64 data URL into raw bytes and a content type.
// A bare base64 payload without the data: prefix is accepted and treated as
// JPEG.
func DecodeDataURL(dataURL string) ([]byte, string, error) {
	contentType := "image/jpeg"
	payload := dataURL

	if strings.HasPrefix(dataURL, "data:") {
		rest := strings.TrimPrefix(dataURL, "data:")
		sep := strings.Index(rest, ";base64,")
		if sep == -1 {
			return nil, "", fmt.Errorf("invalid base64 image format")
		}
		if ct := rest[:sep]; ct != "" {
			contentType = ct
		}
		payload = rest[sep+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image data: %w", err)
	}

	return data, contentType, nil
}

// ImageFormat maps a content type to the bare format label the model API
// expects ("image/jpeg" -> "jpeg")
func ImageFormat(contentType string) string {
	if format, ok := strings.CutPrefix(contentType, "image/"); ok && format != "" {
		return format
	}
	return "jpeg"
}
