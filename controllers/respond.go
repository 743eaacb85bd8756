package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Diyary311/onlineMenu/pkg/resp"
	"github.com/Diyary311/onlineMenu/services"
	"github.com/gin-gonic/gin"
)

// respondError translates the service error taxonomy to a status code.
// Anything unclassified becomes a logged 500 with a generic body.
func respondError(c *gin.Context, err error) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		body := gin.H{"error": ve.Message}
		if len(ve.ValidCategoryIDs) > 0 {
			body["validCategoryIds"] = ve.ValidCategoryIDs
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}

	var ce *services.ConflictError
	if errors.As(err, &ce) {
		resp.BadRequest(c, ce.Message)
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, "Invalid password.")
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		resp.ServerError(c)
	}
}
