package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "bookify/database/repository/user"
	"bookify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// JWTAuth validates the bearer token and sets "userID" and "userRole" on the
// request context. A Redis cache of token hashes keeps repeat requests off
// Mongo; a miss falls back to the user collection and refills the cache.
func JWTAuth(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		ctx := context.Background()
		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cached, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if hash, role, ok := splitCachedAuth(cached); ok && hash == computedHash {
					_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
					c.Set("userID", userID)
					c.Set("userRole", role)
					c.Next()
					return
				}
				// A different hash means a newer login; revalidate below.
			} else if err != redis.Nil {
				utils.GetLogger().Warn("Auth cache lookup failed", zap.Error(err))
			}
		}

		// Cache miss: confirm the account is still usable.
		proj := bson.M{"id": 1, "role": 1, "is_active": 1, "is_deleted": 1}
		usr, err := users.GetByIDWithProjection(userID, proj)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if usr.IsDeleted || !usr.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account is disabled"})
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, computedHash+"|"+usr.Role, utils.AuthCacheTTL).Err()
		}

		c.Set("userID", userID)
		c.Set("userRole", usr.Role)
		c.Next()
	}
}

// splitCachedAuth unpacks the "tokenHash|role" cache value.
func splitCachedAuth(value string) (string, string, bool) {
	idx := strings.IndexByte(value, '|')
	if idx <= 0 || idx == len(value)-1 {
		return "", "", false
	}
	return value[:idx], value[idx+1:], true
}
