package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Goqerti/yeni/models"
	"github.com/Goqerti/yeni/response"
	"github.com/Goqerti/yeni/services"
)

const actorKey = "actor"

// ActorMiddleware bearer tokendən istifadəçi kimliyini çıxarıb context-ə
// qoyur. Kimliksiz sorğular burada dayanır; capability yoxlamaları isə
// servis qatındadır.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		actor, err := services.ActorFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFromContext context-dəki istifadəçini qaytarır.
func ActorFromContext(c *gin.Context) (models.Actor, bool) {
	value, exists := c.Get(actorKey)
	if !exists {
		return models.Actor{}, false
	}
	actor, ok := value.(models.Actor)
	return actor, ok
}
