package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/delivery/httpapi/middleware"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	ledger domain.LedgerUsecase
}

func NewTransactionHandler(ledger domain.LedgerUsecase) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// GetOwnTransactions serves GET /api/transactions.
func (h *TransactionHandler) GetOwnTransactions(c *gin.Context) {
	session := middleware.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	result, err := h.ledger.GetTransactionsForUser(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load transactions"})
		return
	}
	c.JSON(http.StatusOK, transactionsOrEmpty(result))
}

// GetClientTransactions serves GET /api/admin/client/:id/transactions.
func (h *TransactionHandler) GetClientTransactions(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid client id"})
		return
	}

	result, err := h.ledger.GetTransactionsForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load transactions"})
		return
	}
	c.JSON(http.StatusOK, transactionsOrEmpty(result))
}

// GetPlatformTransactions serves the paginated platform-wide ledger, both
// the admin and the employee route.
func (h *TransactionHandler) GetPlatformTransactions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	result, err := h.ledger.GetTransactionsPlatformWide(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load transactions"})
		return
	}
	c.JSON(http.StatusOK, transactionsOrEmpty(result))
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type updateUsdcRequest struct {
	Status string `json:"status"`
	TxHash string `json:"txHash"`
}

// UpdateDepositStatus serves PATCH /api/admin/deposits/:id.
func (h *TransactionHandler) UpdateDepositStatus(c *gin.Context) {
	h.updateStatus(c, domain.KindSepa)
}

// UpdateUsdtStatus serves PATCH /api/admin/usdt/:id.
func (h *TransactionHandler) UpdateUsdtStatus(c *gin.Context) {
	h.updateStatus(c, domain.KindUsdt)
}

func (h *TransactionHandler) updateStatus(c *gin.Context, kind domain.SourceKind) {
	numericID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid transaction id"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
		return
	}

	id := domain.TransactionID{Kind: kind, NumericID: numericID}
	if err := h.ledger.UpdateStatus(id, req.Status); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated", "id": id.String()})
}

// UpdateUsdcStatus serves PATCH /api/admin/usdc/:id. A txHash in the body
// takes precedence: attaching a hash completes the order.
func (h *TransactionHandler) UpdateUsdcStatus(c *gin.Context) {
	numericID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid transaction id"})
		return
	}

	var req updateUsdcRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Status == "" && req.TxHash == "") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status or txHash is required"})
		return
	}

	id := domain.TransactionID{Kind: domain.KindUsdc, NumericID: numericID}
	if req.TxHash != "" {
		if err := h.ledger.AttachTxHash(id, req.TxHash); err != nil {
			respondMutationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "tx hash attached", "id": id.String()})
		return
	}

	if err := h.ledger.UpdateStatus(id, req.Status); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated", "id": id.String()})
}

// DeleteTransaction serves DELETE /api/admin/transactions/:type/:id, with
// :type being the storage prefix (sepa/usdt/usdc), not the client-facing
// type. The two path segments are rejoined into the composite form so one
// parser owns the "{kind}-{id}" semantics.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := domain.ParseTransactionID(fmt.Sprintf("%s-%s", c.Param("type"), c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid transaction id"})
		return
	}

	if err := h.ledger.DeleteTransaction(id); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted", "id": id.String()})
}

func transactionsOrEmpty(result *domain.LedgerResult) []*domain.Transaction {
	if result.Transactions == nil {
		return []*domain.Transaction{}
	}
	return result.Transactions
}

// respondMutationError distinguishes bad input from not-found from server
// failure. Mutation errors are never swallowed.
func respondMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidTransactionID),
		errors.Is(err, domain.ErrUnknownSourceKind),
		errors.Is(err, domain.ErrHashNotSupported):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "transaction not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to apply mutation"})
	}
}
