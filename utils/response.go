package utils

import "github.com/gin-gonic/gin"

// JSONError writes the structured error body used across the API.
func JSONError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}

// AbortJSONError is JSONError for middleware that must stop the chain.
func AbortJSONError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}
