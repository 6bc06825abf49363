package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/dto"
)

// noRoute answers unknown paths with a JSON 404 instead of Gin's plain text.
func noRoute(c *gin.Context) {
	dto.AbortWithMessage(c, http.StatusNotFound, dto.MessageNotFound)
}

// noMethod answers known paths called with an unsupported method.
func noMethod(c *gin.Context) {
	dto.AbortWithMessage(c, http.StatusMethodNotAllowed, dto.MessageMethodNotAllowed)
}
