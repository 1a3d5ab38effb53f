package handler

import (
	"net/http"
	"strconv"
	"time"

	"islandhop/internal/middleware"
	"islandhop/internal/repository"
	"islandhop/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminSvc    *service.AdminService
	subSvc      *service.SubscriptionService
	userRepo    *repository.UserRepository
	subRepo     *repository.SubscriptionRepository
	bookingRepo *repository.BookingRepository
	auditRepo   *repository.AuditLogRepository
	adminRepo   *repository.AdminRepository
}

func NewAdminHandler(
	adminSvc *service.AdminService,
	subSvc *service.SubscriptionService,
	userRepo *repository.UserRepository,
	subRepo *repository.SubscriptionRepository,
	bookingRepo *repository.BookingRepository,
	auditRepo *repository.AuditLogRepository,
	adminRepo *repository.AdminRepository,
) *AdminHandler {
	return &AdminHandler{
		adminSvc:    adminSvc,
		subSvc:      subSvc,
		userRepo:    userRepo,
		subRepo:     subRepo,
		bookingRepo: bookingRepo,
		auditRepo:   auditRepo,
		adminRepo:   adminRepo,
	}
}

func (h *AdminHandler) ListProviders(c *gin.Context) {
	providers, err := h.userRepo.ListProviders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, providers)
}

// parseDate accepts a YYYY-MM-DD paid-until value; empty means not set.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateProviderSubscription is the admin override of tier, custom
// commission rate and paid-until.
func (h *AdminHandler) UpdateProviderSubscription(c *gin.Context) {
	adminID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req struct {
		SubscriptionType      string   `json:"subscription_type" binding:"required,oneof=free pro vip"`
		CustomCommissionRate  *float64 `json:"custom_commission_rate"`
		SubscriptionPaidUntil string   `json:"subscription_paid_until"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	paidUntil, err := parseDate(req.SubscriptionPaidUntil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subscription_paid_until must be YYYY-MM-DD"})
		return
	}
	err = h.adminSvc.UpdateProviderSubscription(service.ProviderSubscriptionUpdate{
		ProviderID:            uint(id),
		AdminID:               adminID,
		SubscriptionType:      req.SubscriptionType,
		CustomCommissionRate:  req.CustomCommissionRate,
		SubscriptionPaidUntil: paidUntil,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Provider subscription updated successfully"})
}

// ListPendingTransactions shows offline payments awaiting review.
func (h *AdminHandler) ListPendingTransactions(c *gin.Context) {
	txns, err := h.subRepo.ListPending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	out := make([]gin.H, 0, len(txns))
	for i := range txns {
		t := &txns[i]
		out = append(out, gin.H{
			"id":                t.ID,
			"provider_id":       t.ProviderID,
			"subscription_type": t.SubscriptionType,
			"amount":            t.Amount,
			"payment_method":    t.PaymentMethod,
			"payment_reference": t.PaymentReference,
			"status":            t.Status,
			"created_at":        t.CreatedAt,
			"provider_name":     t.Provider.Name,
			"provider_email":    t.Provider.Email,
		})
	}
	c.JSON(http.StatusOK, out)
}

// ReviewTransaction approves or rejects an offline payment.
func (h *AdminHandler) ReviewTransaction(c *gin.Context) {
	adminID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req struct {
		Status                string `json:"status" binding:"required,oneof=approved rejected"`
		SubscriptionPaidUntil string `json:"subscription_paid_until"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	paidUntil, err := parseDate(req.SubscriptionPaidUntil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subscription_paid_until must be YYYY-MM-DD"})
		return
	}
	txn, err := h.subSvc.Review(service.ReviewTransactionInput{
		TransactionID:         uint(id),
		AdminID:               adminID,
		Decision:              req.Status,
		SubscriptionPaidUntil: paidUntil,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction " + txn.Status + " successfully"})
}

func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingRepo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	out := make([]gin.H, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookingEntry(&bookings[i], true))
	}
	c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminRepo.GetMarketplaceStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats failed"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) AuditLog(c *gin.Context) {
	entries, err := h.auditRepo.List(100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	out := make([]gin.H, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		out = append(out, gin.H{
			"id":          e.ID,
			"admin_id":    e.AdminID,
			"action_type": e.ActionType,
			"target_type": e.TargetType,
			"target_id":   e.TargetID,
			"old_value":   e.OldValue,
			"new_value":   e.NewValue,
			"description": e.Description,
			"created_at":  e.CreatedAt,
			"admin_name":  e.Admin.Name,
		})
	}
	c.JSON(http.StatusOK, out)
}
