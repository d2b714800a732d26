package handlers

import "github.com/gin-gonic/gin"

// envelope is the uniform wrapper for every successful response. Error
// responses deliberately bypass it and carry a bare {"detail": ...} body
// instead; existing clients depend on that asymmetry.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, envelope{Success: true, Data: data, Message: message})
}

func fail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}
