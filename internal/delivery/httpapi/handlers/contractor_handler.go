package handlers

import (
	"net/http"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	"github.com/gin-gonic/gin"
)

type ContractorHandler struct {
	contractors domain.ContractorUsecase
}

func NewContractorHandler(contractors domain.ContractorUsecase) *ContractorHandler {
	return &ContractorHandler{contractors: contractors}
}

type createContractorRequest struct {
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email"`
	CommissionRate float64 `json:"commissionRate"`
}

type contractorResponse struct {
	ID             uint64  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	ReferralCode   string  `json:"referralCode"`
	CommissionRate float64 `json:"commissionRate"`
	IsActive       bool    `json:"isActive"`
}

func toContractorResponse(contractor *domain.Contractor) contractorResponse {
	return contractorResponse{
		ID:             contractor.ID,
		Name:           contractor.Name,
		Email:          contractor.Email,
		ReferralCode:   contractor.ReferralCode,
		CommissionRate: contractor.CommissionRate,
		IsActive:       contractor.IsActive,
	}
}

// CreateContractor serves POST /api/admin/contractors.
func (h *ContractorHandler) CreateContractor(c *gin.Context) {
	var req createContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}

	contractor, err := h.contractors.CreateContractor(req.Name, req.Email, req.CommissionRate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create contractor"})
		return
	}
	c.JSON(http.StatusCreated, toContractorResponse(contractor))
}

// GetContractors serves GET /api/admin/contractors.
func (h *ContractorHandler) GetContractors(c *gin.Context) {
	contractors, err := h.contractors.GetContractors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list contractors"})
		return
	}

	response := make([]contractorResponse, len(contractors))
	for i, contractor := range contractors {
		response[i] = toContractorResponse(contractor)
	}
	c.JSON(http.StatusOK, response)
}
