package markets

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kelu/tote/app/api"
)

// Handler handles HTTP requests for markets
type Handler struct {
	service Service
}

// NewHandler creates a new market handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// parseUUIDFromParam extracts and validates UUID from path parameter
func (h *Handler) parseUUIDFromParam(c *gin.Context, paramName string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(paramName))
	if err != nil {
		api.ValidationErrorResponse(c, "invalid "+paramName+" format")
		return uuid.Nil, false
	}
	return id, true
}

// CreateMarket godoc
// @Summary Open a new market
// @Description Open a pari-mutuel betting market; the creation fee is debited from the caller
// @Tags markets
// @Accept json
// @Produce json
// @Param X-Account-ID header string true "Caller account ID"
// @Param request body CreateMarketRequest true "Market definition"
// @Success 201 {object} api.Response{data=MarketResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 402 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets [post]
func (h *Handler) CreateMarket(c *gin.Context) {
	accountID, ok := api.AccountID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	var req CreateMarketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	resp, err := h.service.CreateMarket(c.Request.Context(), accountID, &req)
	if err != nil {
		api.DomainErrorResponse(c, err)
		return
	}
	api.CreatedResponse(c, "market opened", resp)
}

// GetMarkets godoc
// @Summary List markets
// @Description Get a paginated list of markets with optional filters
// @Tags markets
// @Produce json
// @Param phase query string false "Filter by phase" Enums(betting,resolved,cancelled)
// @Param creator_id query string false "Filter by creator ID"
// @Param sort_by query string false "Sort field" Enums(created_at,end_time,total_pool) default(created_at)
// @Param sort_order query string false "Sort direction" Enums(asc,desc) default(desc)
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} api.Response{data=MarketListResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets [get]
func (h *Handler) GetMarkets(c *gin.Context) {
	var filters MarketFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	resp, err := h.service.GetMarkets(c.Request.Context(), &filters)
	if err != nil {
		api.DomainErrorResponse(c, err)
		return
	}
	api.ListResponse(c, "markets retrieved", resp, len(resp.Markets))
}

// GetMarketByID godoc
// @Summary Get a market
// @Description Get a single market with pools and leadership state
// @Tags markets
// @Produce json
// @Param id path string true "Market ID"
// @Success 200 {object} api.Response{data=MarketResponse}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id} [get]
func (h *Handler) GetMarketByID(c *gin.Context) {
	id, ok := h.parseUUIDFromParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetMarketByID(c.Request.Context(), id)
	if err != nil {
		api.DomainErrorResponse(c, err)
		return
	}
	api.SuccessResponse(c, 200, "market retrieved", resp)
}

// GetOdds godoc
// @Summary Get market odds
// @Description Get the normalized pool shares of a market
// @Tags markets
// @Produce json
// @Param id path string true "Market ID"
// @Success 200 {object} api.Response{data=OddsResponse}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id}/odds [get]
func (h *Handler) GetOdds(c *gin.Context) {
	id, ok := h.parseUUIDFromParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetOdds(c.Request.Context(), id)
	if err != nil {
		api.DomainErrorResponse(c, err)
		return
	}
	api.SuccessResponse(c, 200, "odds retrieved", resp)
}

// ResolveMarket godoc
// @Summary Resolve a market
// @Description Settle an ended market; the winner is computed from leadership and money scores
// @Tags markets
// @Produce json
// @Param X-Account-ID header string true "Caller account ID"
// @Param id path string true "Market ID"
// @Success 200 {object} api.Response{data=MarketResponse}
// @Failure 403 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id}/resolve [post]
func (h *Handler) ResolveMarket(c *gin.Context) {
	accountID, ok := api.AccountID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}
	id, ok := h.parseUUIDFromParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.ResolveMarket(c.Request.Context(), id, accountID)
	if err != nil {
		api.DomainErrorResponse(c, err)
		return
	}
	api.SuccessResponse(c, 200, "market resolved", resp)
}

// SetPaused godoc
// @Summary Pause or unpause a market
// @Description Toggle the administrative pause flag; paused markets reject new bets
// @Tags markets
// @Accept json
// @Produce json
// @Param X-Account-ID header string true "Caller account ID"
// @Param id path string true "Market ID"
// @Param request body PauseRequest true "Pause flag"
// @Success 200 {object} api.Response{data=MarketResponse}
// @Failure 403 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id}/pause [post]
func (h *Handler) SetPaused(c *gin.Context) {
	accountID, ok := api.AccountID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}
	id, ok := h.parseUUIDFromParam(c, "id")
	if !ok {
		return
	}

	var req PauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	resp, err := h.service.SetPaused(c.Request.Context(), id, accountID, *req.Paused)
	if err != nil {
		api.DomainErrorResponse(c, err)
		return
	}
	api.SuccessResponse(c, 200, "market pause updated", resp)
}
