package handlers

import (
	"net/http"

	"mywallet/internal/metrics"
	"mywallet/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgListRecordsFailed  = "Algo deu errado no banco de dados!"
	msgCreateRecordFailed = "Não foi possível salvar o registro!"
	msgProfileFailed      = "Algo deu errado na requisição dos dados do usuario!"
)

// CreateRecordRequest is the payload for a new record. Both fields are optional.
type CreateRecordRequest struct {
	Valor     float64 `json:"valor" example:"-42.5"`
	Descricao string  `json:"descricao" example:"Mercado"`
}

// @Summary      List records
// @Description  All records of the authenticated user, in insertion order.
// @Tags         records
// @Produce      json
// @Success      200  {array}   models.Record
// @Failure      401  {string}  string
// @Failure      404  {string}  string
// @Failure      500  {string}  string
// @Router       /registros [get]
// @Security     BearerAuth
func (h *Handler) listRecords(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.String(http.StatusUnauthorized, msgInvalidToken)
		return
	}

	records, err := h.services.Records.List(c.Request.Context(), user.ID)
	if err != nil {
		h.logAndTextError(c, http.StatusInternalServerError, msgListRecordsFailed, "records_list_failed", err, "user_id", user.ID)
		return
	}
	c.JSON(http.StatusOK, records)
}

// @Summary      Create record
// @Description  Stores a record dated today (DD/MM) and returns all of the user's records.
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        body  body  CreateRecordRequest  true  "Record payload"
// @Success      200  {array}   models.Record
// @Failure      401  {string}  string
// @Failure      404  {string}  string
// @Failure      422  {array}   string
// @Failure      500  {string}  string
// @Router       /registros [post]
// @Security     BearerAuth
func (h *Handler) createRecord(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.String(http.StatusUnauthorized, msgInvalidToken)
		return
	}

	var input CreateRecordRequest
	if ok := h.bindOrUnprocessable(c, &input); !ok {
		return
	}

	records, err := h.services.Records.Create(c.Request.Context(), user, service.RecordParams{
		Amount:      input.Valor,
		Description: input.Descricao,
	})
	if err != nil {
		h.logAndTextError(c, http.StatusInternalServerError, msgCreateRecordFailed, "records_create_failed", err, "user_id", user.ID)
		return
	}
	metrics.RecordsCreated.Inc()
	c.JSON(http.StatusOK, records)
}

// @Summary      Current user
// @Description  Profile of the authenticated user. Credential material is never included.
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {string}  string
// @Failure      404  {string}  string
// @Router       /usuario [get]
// @Security     BearerAuth
func (h *Handler) getProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.logAndTextError(c, http.StatusInternalServerError, msgProfileFailed, "profile_missing_identity", nil)
		return
	}
	c.JSON(http.StatusOK, user)
}
