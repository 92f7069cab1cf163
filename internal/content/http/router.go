// Package http exposes the content store over gin. Transport concerns only;
// all invariants live in the service and repositories.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/stefdorosh/portfolio-backend/internal/content/service"
)

// Handler holds the content endpoints.
type Handler struct {
	svc *service.ContentService
}

// Register mounts the public read routes on rg and the mutating routes on
// admin. The caller decides which middleware guards the admin group.
func Register(rg *gin.RouterGroup, admin *gin.RouterGroup, svc *service.ContentService) {
	h := &Handler{svc: svc}

	rg.GET("/projects", h.listProjects)
	rg.GET("/projects/tags", h.listTags)
	rg.GET("/projects/slug/:slug", h.getProjectBySlug)
	rg.GET("/projects/:id", h.getProject)
	rg.GET("/hero", h.getHero)

	admin.POST("/projects", h.createProject)
	admin.PATCH("/projects/:id", h.updateProject)
	admin.DELETE("/projects/:id", h.deleteProject)
	admin.PUT("/hero", h.upsertHero)
}
