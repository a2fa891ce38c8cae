package wagers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kelu/tote/app/api"
)

// Handler handles HTTP requests for wagers
type Handler struct {
	service Service
}

// NewHandler creates a new wager handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) parseMarketID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.ValidationErrorResponse(c, "invalid id format")
		return uuid.Nil, false
	}
	return id, true
}

// PlaceBet godoc
// @Summary Place a bet
// @Description Stake on one outcome of an active market
// @Tags wagers
// @Accept json
// @Produce json
// @Param X-Account-ID header string true "Caller account ID"
// @Param id path string true "Market ID"
// @Param request body PlaceBetRequest true "Bet"
// @Success 201 {object} api.Response{data=BetResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 402 {object} api.Response{error=api.ErrorInfo}
// @Failure 429 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id}/bets [post]
func (h *Handler) PlaceBet(c *gin.Context) {
	accountID, ok := api.AccountID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}
	marketID, ok := h.parseMarketID(c)
	if !ok {
		return
	}

	var req PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	resp, err := h.service.PlaceBet(c.Request.Context(), accountID, marketID, &req)
	if err != nil {
		api.DomainErrorResponse(c, err)
		return
	}
	api.CreatedResponse(c, "bet placed", resp)
}

// Claim godoc
// @Summary Claim winnings
// @Description Pay out the caller's winning position in a resolved market
// @Tags wagers
// @Produce json
// @Param X-Account-ID header string true "Caller account ID"
// @Param id path string true "Market ID"
// @Success 200 {object} api.Response{data=ClaimResponse}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id}/claims [post]
func (h *Handler) Claim(c *gin.Context) {
	accountID, ok := api.AccountID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}
	marketID, ok := h.parseMarketID(c)
	if !ok {
		return
	}

	resp, err := h.service.Claim(c.Request.Context(), accountID, marketID)
	if err != nil {
		api.DomainErrorResponse(c, err)
		return
	}
	api.SuccessResponse(c, 200, "winnings claimed", resp)
}

// GetMyPosition godoc
// @Summary Get own position
// @Description Get the caller's position in one market
// @Tags wagers
// @Produce json
// @Param X-Account-ID header string true "Caller account ID"
// @Param id path string true "Market ID"
// @Success 200 {object} api.Response{data=PositionResponse}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id}/positions/me [get]
func (h *Handler) GetMyPosition(c *gin.Context) {
	accountID, ok := api.AccountID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}
	marketID, ok := h.parseMarketID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetMyPosition(c.Request.Context(), accountID, marketID)
	if err != nil {
		api.DomainErrorResponse(c, err)
		return
	}
	api.SuccessResponse(c, 200, "position retrieved", resp)
}

// GetMyPositions godoc
// @Summary List own positions
// @Description Get all of the caller's positions across markets
// @Tags wagers
// @Produce json
// @Param X-Account-ID header string true "Caller account ID"
// @Success 200 {object} api.Response{data=[]PositionResponse}
// @Router /api/v1/positions/me [get]
func (h *Handler) GetMyPositions(c *gin.Context) {
	accountID, ok := api.AccountID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	resp, err := h.service.GetMyPositions(c.Request.Context(), accountID)
	if err != nil {
		api.DomainErrorResponse(c, err)
		return
	}
	api.ListResponse(c, "positions retrieved", resp, len(resp))
}
