package response

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope:
// {"success": bool, "message": string, "data": ...}.

func Success(c *gin.Context, statusCode int, message string, data any) {
	body := gin.H{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(statusCode, body)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

func AbortError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}
