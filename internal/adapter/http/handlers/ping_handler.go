package handlers

import (
	"net/http"

	response "barberapp/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.PingResponse{Message: "pong"})
}
