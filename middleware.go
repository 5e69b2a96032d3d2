// middleware.go

package main

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates the protected routes. No credential at all is 401;
// a credential that fails verification is 403. On success the requester's
// email is stored on the context for the handler.
func (s *Server) AuthMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(401, gin.H{"error": "missing token"})
		return
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")
	if tokenStr == header {
		c.AbortWithStatusJSON(403, gin.H{"error": "invalid token"})
		return
	}
	email, err := s.tokens.Verify(tokenStr)
	if err != nil {
		c.AbortWithStatusJSON(403, gin.H{"error": "invalid token"})
		return
	}
	c.Set("email", email)
	c.Next()
}
