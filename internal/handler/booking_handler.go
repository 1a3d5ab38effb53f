package handler

import (
	"net/http"
	"strconv"

	"islandhop/internal/middleware"
	"islandhop/internal/models"
	"islandhop/internal/repository"
	"islandhop/internal/service"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingSvc  *service.BookingService
	bookingRepo *repository.BookingRepository
}

func NewBookingHandler(bookingSvc *service.BookingService, bookingRepo *repository.BookingRepository) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc, bookingRepo: bookingRepo}
}

// Create is the public booking endpoint; tourists book without accounts.
func (h *BookingHandler) Create(c *gin.Context) {
	var req struct {
		TripID          uint   `json:"trip_id" binding:"required"`
		TouristName     string `json:"tourist_name" binding:"required"`
		TouristWhatsapp string `json:"tourist_whatsapp" binding:"required"`
		BookingDate     string `json:"booking_date" binding:"required"`
		NumPeople       int    `json:"num_people" binding:"required,gt=0"`
		Notes           string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	booking, err := h.bookingSvc.Create(service.CreateBookingInput{
		TripID:          req.TripID,
		TouristName:     req.TouristName,
		TouristWhatsapp: req.TouristWhatsapp,
		BookingDate:     req.BookingDate,
		NumPeople:       req.NumPeople,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":           booking.ID,
		"booking_code": booking.BookingCode,
		"qr_code":      booking.QRCode,
		"total_amount": booking.TotalAmount,
		"message":      "Booking created successfully",
	})
}

func bookingEntry(b *models.Booking, withProvider bool) gin.H {
	entry := gin.H{
		"id":                b.ID,
		"trip_id":           b.TripID,
		"provider_id":       b.ProviderID,
		"tourist_name":      b.TouristName,
		"tourist_whatsapp":  b.TouristWhatsapp,
		"booking_date":      b.BookingDate,
		"num_people":        b.NumPeople,
		"notes":             b.Notes,
		"booking_code":      b.BookingCode,
		"qr_code":           b.QRCode,
		"total_amount":      b.TotalAmount,
		"commission_rate":   b.CommissionRate,
		"commission_amount": b.CommissionAmount,
		"status":            b.Status,
		"payment_status":    b.PaymentStatus,
		"completed_at":      b.CompletedAt,
		"created_at":        b.CreatedAt,
		"trip_title":        b.Trip.Title,
		"island":            b.Trip.Island,
	}
	if withProvider {
		entry["provider_name"] = b.Provider.Name
		entry["provider_phone"] = b.Provider.Phone
	}
	return entry
}

// LookupByCode is public and unauthenticated: the code is the capability.
func (h *BookingHandler) LookupByCode(c *gin.Context) {
	booking, err := h.bookingSvc.LookupByCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingEntry(booking, true))
}

// ListMine returns the provider's bookings with trip context.
func (h *BookingHandler) ListMine(c *gin.Context) {
	bookings, err := h.bookingRepo.ListByProvider(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	out := make([]gin.H, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookingEntry(&bookings[i], false))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateStatus moves a booking's status and/or payment status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	providerID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req struct {
		Status        string `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
		PaymentStatus string `json:"payment_status" binding:"omitempty,oneof=pending paid"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.bookingSvc.UpdateStatus(uint(id), providerID, req.Status, req.PaymentStatus); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated successfully"})
}
