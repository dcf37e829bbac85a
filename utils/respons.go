package utils

import "github.com/gin-gonic/gin"

// RespondError writes the uniform error body. Every failure leaving the API
// is a JSON object with a single "error" string; nothing else (in particular
// no stack trace) reaches the client.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"error": err.Error()})
}
