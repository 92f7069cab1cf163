package http

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefdorosh/portfolio-backend/internal/api/http/middleware"
	"github.com/stefdorosh/portfolio-backend/internal/content/domain"
	"github.com/stefdorosh/portfolio-backend/internal/content/repository"
	"github.com/stefdorosh/portfolio-backend/internal/content/service"
	"github.com/stefdorosh/portfolio-backend/internal/content/validate"
)

const testToken = "test-admin-token"

var projectCols = []string{"id", "title", "description", "image", "link", "keywords", "created_at", "updated_at"}
var heroCols = []string{"id", "avatar", "full_name", "short_description", "long_description", "created_at", "updated_at"}

func setupRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	projectRepo := repository.NewProjectRepository(db)
	heroRepo := repository.NewHeroRepository(db, domain.DefaultHeroContent())
	svc := service.NewContentService(projectRepo, heroRepo, validate.New(), nil)

	r := gin.New()
	api := r.Group("/api/v1")
	admin := api.Group("")
	admin.Use(middleware.AdminTokenMiddleware(testToken))
	Register(api, admin, svc)

	return r, mock
}

func do(r *gin.Engine, method, path string, body *bytes.Buffer, header map[string]string) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListProjects(t *testing.T) {
	r, mock := setupRouter(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM projects ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(projectCols).
			AddRow("id-1", "Weather Dashboard", "Real-time weather app",
				"https://e.com/w.png", "https://e.com/w", "{api,weather}", now, now))

	w := do(r, http.MethodGet, "/api/v1/projects", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK       bool             `json:"ok"`
		Projects []domain.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, "Weather Dashboard", resp.Projects[0].Title)
}

func TestListProjects_TagFilter(t *testing.T) {
	r, mock := setupRouter(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM projects ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(projectCols).
			AddRow("id-1", "A", "d", "https://e.com/a.png", "https://e.com/a", "{react,auth}", now, now).
			AddRow("id-2", "B", "d", "https://e.com/b.png", "https://e.com/b", "{react}", now, now))

	w := do(r, http.MethodGet, "/api/v1/projects?tags=react,auth", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Projects []domain.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, "id-1", resp.Projects[0].ID)
}

func TestGetProjectBySlug(t *testing.T) {
	r, mock := setupRouter(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM projects ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(projectCols).
			AddRow("id-1", "My Cool Project!", "d", "https://e.com/p.png", "https://e.com/p", "{}", now, now))

	w := do(r, http.MethodGet, "/api/v1/projects/slug/my-cool-project", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Project domain.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "id-1", resp.Project.ID)
}

func TestGetProject_NotFound(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM projects WHERE id = \$1`).
		WillReturnError(sql.ErrNoRows)

	w := do(r, http.MethodGet, "/api/v1/projects/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProject_RequiresAdminToken(t *testing.T) {
	r, _ := setupRouter(t)

	body := bytes.NewBufferString(`{"title":"x"}`)
	w := do(r, http.MethodPost, "/api/v1/projects", body, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	body = bytes.NewBufferString(`{"title":"x"}`)
	w = do(r, http.MethodPost, "/api/v1/projects", body, map[string]string{"X-Admin-Token": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProject_ValidationDetails(t *testing.T) {
	r, _ := setupRouter(t)

	body := bytes.NewBufferString(`{"title":"","description":"","image":"bad","link":"bad"}`)
	w := do(r, http.MethodPost, "/api/v1/projects", body, map[string]string{"X-Admin-Token": testToken})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Details []validate.FieldError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.GreaterOrEqual(t, len(resp.Details), 4, "every violated field must be reported")
}

func TestUpdateProject_RejectsImmutableFields(t *testing.T) {
	r, mock := setupRouter(t)

	body := bytes.NewBufferString(`{"id":"hijack","title":"x"}`)
	w := do(r, http.MethodPatch, "/api/v1/projects/id-1", body, map[string]string{"X-Admin-Token": testToken})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The store may not have been touched.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProject_Partial(t *testing.T) {
	r, mock := setupRouter(t)

	now := time.Now()
	mock.ExpectQuery(`UPDATE projects SET title = \$2, updated_at = now\(\)`).
		WithArgs("id-1", "New Title").
		WillReturnRows(sqlmock.NewRows(projectCols).
			AddRow("id-1", "New Title", "old description", "https://e.com/p.png", "https://e.com/p", "{}", now, now))

	body := bytes.NewBufferString(`{"title":"New Title"}`)
	w := do(r, http.MethodPatch, "/api/v1/projects/id-1", body, map[string]string{"X-Admin-Token": testToken})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Project domain.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "old description", resp.Project.Description)
}

func TestDeleteProject(t *testing.T) {
	r, mock := setupRouter(t)

	now := time.Now()
	mock.ExpectQuery(`DELETE FROM projects WHERE id = \$1 RETURNING`).
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows(projectCols).
			AddRow("id-1", "Gone", "d", "https://e.com/p.png", "https://e.com/p", "{}", now, now))

	w := do(r, http.MethodDelete, "/api/v1/projects/id-1", nil, map[string]string{"X-Admin-Token": testToken})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Project domain.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Gone", resp.Project.Title)
}

func TestGetHero_DefaultWhenUnset(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM hero`).
		WillReturnError(sql.ErrNoRows)

	w := do(r, http.MethodGet, "/api/v1/hero", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Hero domain.Hero `json:"hero"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Hero.ID)
	assert.Equal(t, domain.DefaultHeroContent().FullName, resp.Hero.FullName)
}

func heroForm(t *testing.T, fields map[string]string, fileType string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileData != nil {
		hdr := make(map[string][]string)
		hdr["Content-Disposition"] = []string{`form-data; name="avatarFile"; filename="avatar"`}
		hdr["Content-Type"] = []string{fileType}
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestUpsertHero(t *testing.T) {
	r, mock := setupRouter(t)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO hero (.+) ON CONFLICT \(singleton\) DO UPDATE`).
		WillReturnRows(sqlmock.NewRows(heroCols).
			AddRow("hero-1", "", "Jane Doe", "Engineer", "A long enough biography here.", now, now))

	body, contentType := heroForm(t, map[string]string{"fullName": "Jane Doe"}, "", nil)
	w := do(r, http.MethodPut, "/api/v1/hero", body, map[string]string{
		"X-Admin-Token": testToken,
		"Content-Type":  contentType,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Hero domain.Hero `json:"hero"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hero-1", resp.Hero.ID)
	assert.Equal(t, "Jane Doe", resp.Hero.FullName)
}

func TestUpsertHero_AvatarRejections(t *testing.T) {
	t.Run("non-image media type", func(t *testing.T) {
		r, mock := setupRouter(t)

		body, contentType := heroForm(t, nil, "application/pdf", []byte("%PDF"))
		w := do(r, http.MethodPut, "/api/v1/hero", body, map[string]string{
			"X-Admin-Token": testToken,
			"Content-Type":  contentType,
		})
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("payload over 1 MiB", func(t *testing.T) {
		r, mock := setupRouter(t)

		body, contentType := heroForm(t, nil, "image/png", bytes.Repeat([]byte{0xff}, 1<<20+1))
		w := do(r, http.MethodPut, "/api/v1/hero", body, map[string]string{
			"X-Admin-Token": testToken,
			"Content-Type":  contentType,
		})
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpsertHero_ValidationBounds(t *testing.T) {
	r, _ := setupRouter(t)

	body, contentType := heroForm(t, map[string]string{
		"shortDescription": strings.Repeat("s", 121),
	}, "", nil)
	w := do(r, http.MethodPut, "/api/v1/hero", body, map[string]string{
		"X-Admin-Token": testToken,
		"Content-Type":  contentType,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
