package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stefdorosh/portfolio-backend/internal/content/domain"
	"github.com/stefdorosh/portfolio-backend/internal/content/validate"
)

type createProjectReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Link        string   `json:"link"`
	Keywords    []string `json:"keywords"`
}

// updateProjectReq deliberately has no id/createdAt/updatedAt fields; the
// decoder runs with DisallowUnknownFields so patches carrying them are
// rejected outright.
type updateProjectReq struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Link        *string   `json:"link"`
	Keywords    *[]string `json:"keywords"`
}

func (r updateProjectReq) patch() domain.ProjectPatch {
	return domain.ProjectPatch{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Link:        r.Link,
		Keywords:    r.Keywords,
	}
}

// respondError maps store errors onto transport codes. Anything that is not
// a validation problem or a logical miss is a storage fault.
func respondError(c *gin.Context, err error) {
	var verr *validate.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "validation failed", "details": verr.Fields})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
	case errors.Is(err, domain.ErrUnsupportedMediaType):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"ok": false, "error": "avatar must be an image"})
	case errors.Is(err, domain.ErrPayloadTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"ok": false, "error": "avatar exceeds 1 MiB"})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "storage unavailable"})
	}
}
