package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stefdorosh/portfolio-backend/internal/content/avatar"
	"github.com/stefdorosh/portfolio-backend/internal/content/domain"
)

func (h *Handler) getHero(c *gin.Context) {
	hero, err := h.svc.GetHero(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "hero": hero})
}

// upsertHero accepts a multipart form: text fields merge into the singleton
// record, an optional avatarFile part is encoded into a data URI. Absent
// fields keep their stored value.
func (h *Handler) upsertHero(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid form"})
		return
	}

	patch := domain.HeroPatch{
		FullName:         formValue(form.Value, "fullName"),
		ShortDescription: formValue(form.Value, "shortDescription"),
		LongDescription:  formValue(form.Value, "longDescription"),
	}
	// An empty avatar string means "no change", matching the file-less path.
	if v := formValue(form.Value, "avatar"); v != nil && *v != "" {
		patch.Avatar = v
	}

	var avatarData []byte
	var avatarType string
	if files := form.File["avatarFile"]; len(files) > 0 {
		fh := files[0]
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unreadable avatar file"})
			return
		}
		defer f.Close()

		// Read one byte past the limit so oversized uploads are detected
		// without buffering the whole payload.
		avatarData, err = io.ReadAll(io.LimitReader(f, avatar.MaxBytes+1))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unreadable avatar file"})
			return
		}
		avatarType = fh.Header.Get("Content-Type")
	}

	hero, err := h.svc.UpsertHero(c.Request.Context(), patch, avatarData, avatarType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "hero": hero})
}

func formValue(values map[string][]string, key string) *string {
	v, present := values[key]
	if !present || len(v) == 0 {
		return nil
	}
	return &v[0]
}
