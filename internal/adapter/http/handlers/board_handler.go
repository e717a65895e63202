package handlers

import (
	"net/http"

	response "barberapp/internal/adapter/http/dto/response"
	"barberapp/internal/adminview"
	"barberapp/internal/infrastructure/i18n"
	"barberapp/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BoardHandler exposes the admin panel view, where status toggles are shown
// before the store confirms them.
type BoardHandler struct {
	board *adminview.Board
	tr    *i18n.Translator
}

func NewBoardHandler(board *adminview.Board, tr *i18n.Translator) *BoardHandler {
	return &BoardHandler{board: board, tr: tr}
}

func (h *BoardHandler) GetBoard(c *gin.Context) {
	c.JSON(http.StatusOK, response.NewBoardResponse(h.tr, requestLocale(c, h.tr), h.board))
}

func (h *BoardHandler) Refresh(c *gin.Context) {
	locale := requestLocale(c, h.tr)
	action := h.board.Refresh(c.Request.Context())
	if action.Err != nil {
		respondError(c, mapServiceError(h.tr, locale, usecase.ServiceActionFetch, action.Err))
		return
	}
	c.JSON(http.StatusOK, response.NewBoardResponse(h.tr, locale, h.board))
}

// Toggle flips a service on the board. A rolled back toggle answers with the
// status of the store failure and the restored record.
func (h *BoardHandler) Toggle(c *gin.Context) {
	locale := requestLocale(c, h.tr)
	action := h.board.Toggle(c.Request.Context(), c.Param("id"))
	body := response.NewBoardActionResponse(h.tr, locale, action)

	switch {
	case action.State == adminview.ActionCommitted:
		c.JSON(http.StatusOK, body)
	case action.Err != nil:
		c.JSON(mapServiceError(h.tr, locale, usecase.ServiceActionToggle, action.Err).HTTPStatus, body)
	default:
		c.JSON(http.StatusConflict, body)
	}
}
