// Package avatar turns uploaded image bytes into embeddable data URIs.
package avatar

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/stefdorosh/portfolio-backend/internal/content/domain"
)

// MaxBytes is the upload ceiling: 1 MiB.
const MaxBytes = 1 << 20

// Encode returns a data URI embedding the base64-encoded payload under the
// declared media type. Only image/* types are accepted and the payload must
// not exceed MaxBytes. The filesystem is never touched.
func Encode(data []byte, mediaType string) (string, error) {
	mediaType = strings.TrimSpace(strings.ToLower(mediaType))
	if mediaType == "" {
		mediaType = "image/png"
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedMediaType, mediaType)
	}
	if len(data) > MaxBytes {
		return "", fmt.Errorf("%w: %d bytes (max %d)", domain.ErrPayloadTooLarge, len(data), MaxBytes)
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
