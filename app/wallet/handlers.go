package wallet

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelu/tote/app/api"
)

// Handler handles HTTP requests for wallets
type Handler struct {
	service Service
}

// NewHandler creates a new wallet handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Deposit godoc
// @Summary Deposit funds
// @Description Credit funds to the caller's wallet, creating it on first use
// @Tags wallets
// @Accept json
// @Produce json
// @Param X-Account-ID header string true "Caller account ID"
// @Param request body DepositRequest true "Deposit amount"
// @Success 200 {object} api.Response{data=WalletResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/wallets/deposits [post]
func (h *Handler) Deposit(c *gin.Context) {
	accountID, ok := api.AccountID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	resp, err := h.service.Deposit(c.Request.Context(), accountID, &req)
	if err != nil {
		api.DomainErrorResponse(c, err)
		return
	}
	api.SuccessResponse(c, http.StatusOK, "deposit credited", resp)
}

// GetMyWallet godoc
// @Summary Get own wallet
// @Description Return the caller's wallet balance
// @Tags wallets
// @Produce json
// @Param X-Account-ID header string true "Caller account ID"
// @Success 200 {object} api.Response{data=WalletResponse}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/wallets/me [get]
func (h *Handler) GetMyWallet(c *gin.Context) {
	accountID, ok := api.AccountID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	resp, err := h.service.GetMyWallet(c.Request.Context(), accountID)
	if err != nil {
		api.DomainErrorResponse(c, err)
		return
	}
	api.SuccessResponse(c, http.StatusOK, "wallet retrieved", resp)
}

// GetMyTransactions godoc
// @Summary List own ledger entries
// @Description Return the caller's wallet ledger, newest first
// @Tags wallets
// @Produce json
// @Param X-Account-ID header string true "Caller account ID"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} api.Response{data=[]TransactionResponse}
// @Router /api/v1/wallets/me/transactions [get]
func (h *Handler) GetMyTransactions(c *gin.Context) {
	accountID, ok := api.AccountID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	var filters TransactionFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	transactions, total, err := h.service.GetMyTransactions(c.Request.Context(), accountID, &filters)
	if err != nil {
		api.DomainErrorResponse(c, err)
		return
	}
	api.ListResponse(c, "transactions retrieved", transactions, int(total))
}
