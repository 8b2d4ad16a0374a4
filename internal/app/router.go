package app

import (
	"seatudy_backend/docs"
	"seatudy_backend/internal/config"
	"seatudy_backend/internal/middleware"
	"seatudy_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		oauth := public.Group("/oauth")
		{
			oauth.GET("/kakao", c.auth.KakaoLogin)
			oauth.GET("/google", c.auth.GoogleLogin)
		}
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.member.GetProfile)
		authGroup.PUT("/profile", c.member.UpdateProfile)

		authGroup.POST("/checkin", c.timeCheck.CheckIn)
		authGroup.GET("/checkin", c.timeCheck.GetStatus)
		authGroup.POST("/checkout", c.timeCheck.CheckOut)

		authGroup.GET("/ranks/weekly", c.rank.WeeklyRanking)
	}
}
