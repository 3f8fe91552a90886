package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	professionalRepo "miagenda/database/repository/professional"
	"miagenda/utils"
)

// authCachePrefix keys the token-hash cache in redis.
const authCachePrefix = "auth:pro:"

// JWTAuthProfessionalMiddleware authenticates a professional from the Bearer
// token. The token hash is checked against redis first and against the stored
// record on a miss; the professional ID is placed in the context as
// "professionalID".
func JWTAuthProfessionalMiddleware(repo professionalRepo.ProfessionalRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		professionalID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || professionalID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := authCachePrefix + professionalID

		cache := utils.GetCacheClient()
		cacheEnabled := cache != nil

		if cacheEnabled {
			cachedHash, err := cache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash == computedHash {
					_ = cache.Expire(ctx, cacheKey, time.Hour).Err()
					c.Set("professionalID", professionalID)
					c.Next()
					return
				}
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
				return
			} else if err != redis.Nil {
				log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to DB lookup.", err)
			}
		}

		// Cache miss: the stored token hash is the source of truth. Logout
		// clears it, which invalidates every outstanding token.
		pro, err := repo.GetByTokenHash(ctx, computedHash)
		if err != nil || pro == nil || pro.ID != professionalID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}

		if cacheEnabled {
			_ = cache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
		}

		c.Set("professionalID", professionalID)
		c.Next()
	}
}
