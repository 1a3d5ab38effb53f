package handler

import (
	"net/http"
	"strconv"

	"islandhop/internal/middleware"
	"islandhop/internal/service"

	"github.com/gin-gonic/gin"
)

type BidHandler struct {
	bidSvc *service.BidService
}

func NewBidHandler(bidSvc *service.BidService) *BidHandler {
	return &BidHandler{bidSvc: bidSvc}
}

// Create is the public bid endpoint: name your price on a listed trip.
func (h *BidHandler) Create(c *gin.Context) {
	var req struct {
		TripID          uint    `json:"trip_id" binding:"required"`
		TouristName     string  `json:"tourist_name" binding:"required"`
		TouristWhatsapp string  `json:"tourist_whatsapp" binding:"required"`
		ProposedDate    string  `json:"proposed_date" binding:"required"`
		NumPeople       int     `json:"num_people" binding:"required,gt=0"`
		BidAmount       float64 `json:"bid_amount" binding:"required,gt=0"`
		Notes           string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bid, err := h.bidSvc.Create(service.CreateBidInput{
		TripID:          req.TripID,
		TouristName:     req.TouristName,
		TouristWhatsapp: req.TouristWhatsapp,
		ProposedDate:    req.ProposedDate,
		NumPeople:       req.NumPeople,
		BidAmount:       req.BidAmount,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": bid.ID, "message": "Bid submitted successfully"})
}

// ListMine is the provider's bid inbox (Pro/VIP only).
func (h *BidHandler) ListMine(c *gin.Context) {
	bids, err := h.bidSvc.ListForProvider(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(bids))
	for i := range bids {
		b := &bids[i]
		out = append(out, gin.H{
			"id":                b.ID,
			"trip_id":           b.TripID,
			"tourist_name":      b.TouristName,
			"tourist_whatsapp":  b.TouristWhatsapp,
			"proposed_date":     b.ProposedDate,
			"num_people":        b.NumPeople,
			"bid_amount":        b.BidAmount,
			"notes":             b.Notes,
			"status":            b.Status,
			"counter_offer":     b.CounterOffer,
			"provider_response": b.ProviderResponse,
			"booking_id":        b.BookingID,
			"created_at":        b.CreatedAt,
			"trip_title":        b.Trip.Title,
			"original_price":    b.Trip.Price,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Respond accepts, declines or counters a bid. Acceptance returns the
// booking created alongside.
func (h *BidHandler) Respond(c *gin.Context) {
	providerID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req struct {
		Status           string   `json:"status" binding:"required,oneof=accepted declined countered"`
		ProviderResponse string   `json:"provider_response"`
		CounterOffer     *float64 `json:"counter_offer" binding:"omitempty,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bid, err := h.bidSvc.Respond(service.RespondToBidInput{
		BidID:            uint(id),
		ProviderID:       providerID,
		Status:           req.Status,
		ProviderResponse: req.ProviderResponse,
		CounterOffer:     req.CounterOffer,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	resp := gin.H{"message": "Bid response recorded successfully", "status": bid.Status}
	if bid.Booking != nil {
		resp["booking_id"] = bid.Booking.ID
		resp["booking_code"] = bid.Booking.BookingCode
	}
	c.JSON(http.StatusOK, resp)
}
