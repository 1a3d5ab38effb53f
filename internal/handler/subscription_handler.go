package handler

import (
	"net/http"

	"islandhop/internal/middleware"
	"islandhop/internal/repository"
	"islandhop/internal/service"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subSvc  *service.SubscriptionService
	subRepo *repository.SubscriptionRepository
}

func NewSubscriptionHandler(subSvc *service.SubscriptionService, subRepo *repository.SubscriptionRepository) *SubscriptionHandler {
	return &SubscriptionHandler{subSvc: subSvc, subRepo: subRepo}
}

// SubmitOfflinePayment records a bank-transfer/cash subscription payment
// for admin review.
func (h *SubscriptionHandler) SubmitOfflinePayment(c *gin.Context) {
	providerID := middleware.GetUserID(c)
	var req struct {
		SubscriptionType string  `json:"subscription_type" binding:"required,oneof=free pro vip"`
		Amount           float64 `json:"amount" binding:"required,gt=0"`
		PaymentMethod    string  `json:"payment_method" binding:"required"`
		PaymentReference string  `json:"payment_reference"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	txn, err := h.subSvc.SubmitOfflinePayment(service.OfflinePaymentInput{
		ProviderID:       providerID,
		SubscriptionType: req.SubscriptionType,
		Amount:           req.Amount,
		PaymentMethod:    req.PaymentMethod,
		PaymentReference: req.PaymentReference,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": txn.ID, "message": "Payment submitted for approval"})
}

// ListMine returns the provider's own subscription payment history.
func (h *SubscriptionHandler) ListMine(c *gin.Context) {
	txns, err := h.subRepo.ListByProvider(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, txns)
}
