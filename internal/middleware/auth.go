package middleware

import (
	"seatudy_backend/internal/config"
	"seatudy_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// AuthMiddleware 从 Authorization 头提取 Bearer 令牌并校验
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) <= len(bearerPrefix) || !strings.HasPrefix(authHeader, bearerPrefix) {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := authHeader[len(bearerPrefix):]
		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("member", claims)
		c.Next()
	}
}
