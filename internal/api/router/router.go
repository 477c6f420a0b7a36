package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"attendify/backend/config"
	"attendify/backend/internal/api/handler"
	"attendify/backend/internal/api/middleware"
	"attendify/backend/internal/model"
	"attendify/backend/pkg/jwt"
	"attendify/backend/pkg/redis"
)

// Setup builds the Gin engine and route tree.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── Ops endpoints ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ── API ──
	api := r.Group("/api")
	{
		// Auth (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", middleware.JWTAuth(jwtMgr, rdb), h.Auth.Logout)
		}

		// Admin dashboard
		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth(jwtMgr, rdb), middleware.RoleAuth(model.RoleAdmin))
		{
			admin.GET("/students", h.Admin.ListStudents)
			admin.POST("/students", h.Admin.CreateStudent)
			admin.GET("/students/:id/id-card", h.Admin.GetIDCard)
			admin.POST("/mark-attendance", h.Admin.MarkAttendance)
			admin.GET("/attendance/today", h.Admin.TodayAttendance)
			admin.GET("/attendance/export", h.Admin.ExportAttendance)
		}

		// Student self-service
		student := api.Group("/student")
		student.Use(middleware.JWTAuth(jwtMgr, rdb), middleware.RoleAuth(model.RoleStudent))
		{
			student.GET("/attendance", h.Student.GetAttendance)
			student.POST("/change-password", h.Student.ChangePassword)
		}

		// QR rendering
		qr := api.Group("/qr")
		{
			qr.GET("/generate", h.QR.Generate)
		}
	}

	return r
}
