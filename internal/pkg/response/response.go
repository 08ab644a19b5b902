package response

import "github.com/gin-gonic/gin"

// Error writes the API error envelope. Bodies are intentionally flat
// ({"error": "..."}) so the frontend can render them directly.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ErrorWithDetails attaches diagnostic details outside release mode.
// In production the caller gets only the generic message.
func ErrorWithDetails(c *gin.Context, statusCode int, message string, details any) {
	if gin.Mode() == gin.ReleaseMode {
		Error(c, statusCode, message)
		return
	}
	c.JSON(statusCode, gin.H{
		"error":   message,
		"details": details,
	})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}
