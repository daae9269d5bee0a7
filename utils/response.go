package utils

import "github.com/gin-gonic/gin"

// JSONError writes the API error body {"error": code, "message": message}.
func JSONError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": code, "message": message})
}
