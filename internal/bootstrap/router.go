package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/stefdorosh/portfolio-backend/internal/api/http"
	"github.com/stefdorosh/portfolio-backend/internal/api/http/middleware"
	"github.com/stefdorosh/portfolio-backend/internal/content/cache"
	"github.com/stefdorosh/portfolio-backend/internal/content/domain"
	contenthttp "github.com/stefdorosh/portfolio-backend/internal/content/http"
	"github.com/stefdorosh/portfolio-backend/internal/content/repository"
	"github.com/stefdorosh/portfolio-backend/internal/content/service"
	"github.com/stefdorosh/portfolio-backend/internal/content/validate"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	AdminToken  string
	DB          *sql.DB
	Cache       *cache.Cache // nil disables caching
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	projectRepo := repository.NewProjectRepository(dep.DB)
	heroRepo := repository.NewHeroRepository(dep.DB, domain.DefaultHeroContent())
	svc := service.NewContentService(projectRepo, heroRepo, validate.New(), dep.Cache)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	admin := api.Group("")
	admin.Use(middleware.AdminTokenMiddleware(dep.AdminToken))
	admin.Use(middleware.RateLimitMiddleware())

	contenthttp.Register(api, admin, svc)

	return r
}
