package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/amaradesign/portfolio-backend/internal/api/http"
	apimw "github.com/amaradesign/portfolio-backend/internal/api/http/middleware"
	"github.com/amaradesign/portfolio-backend/internal/auth"
	authhttp "github.com/amaradesign/portfolio-backend/internal/auth/http"
	"github.com/amaradesign/portfolio-backend/internal/auth/middleware"
	"github.com/amaradesign/portfolio-backend/internal/portfolio"
	portfoliohttp "github.com/amaradesign/portfolio-backend/internal/portfolio/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Store       portfolio.Storage
	Auth        *auth.Service
	Cookie      authhttp.CookieOptions
	Redis       *redis.Client
	CORSOrigins []string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(apimw.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true, // the session cookie must cross
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	portfolioHandler := portfoliohttp.New(dep.Store)
	portfolioHandler.RegisterPublic(api)

	authHandler := authhttp.New(dep.Auth, dep.Cookie)
	authHandler.Register(api.Group("/auth"))

	admin := api.Group("/admin")
	admin.Use(middleware.RequireSession(dep.Auth, dep.Cookie.Name))
	portfolioHandler.RegisterAdmin(admin)

	return r
}
