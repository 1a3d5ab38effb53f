package handler

import (
	"net/http"
	"strconv"

	"islandhop/internal/middleware"
	"islandhop/internal/service"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestSvc *service.RequestService
}

func NewRequestHandler(requestSvc *service.RequestService) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc}
}

// Create is the public custom-request endpoint.
func (h *RequestHandler) Create(c *gin.Context) {
	var req struct {
		TouristName     string `json:"tourist_name" binding:"required"`
		TouristWhatsapp string `json:"tourist_whatsapp" binding:"required"`
		Island          string `json:"island" binding:"required"`
		PreferredDate   string `json:"preferred_date"`
		NumPeople       int    `json:"num_people" binding:"required,gt=0"`
		ActivityType    string `json:"activity_type"`
		BudgetRange     string `json:"budget_range"`
		Description     string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	request, err := h.requestSvc.Create(service.CreateRequestInput{
		TouristName:     req.TouristName,
		TouristWhatsapp: req.TouristWhatsapp,
		Island:          req.Island,
		PreferredDate:   req.PreferredDate,
		NumPeople:       req.NumPeople,
		ActivityType:    req.ActivityType,
		BudgetRange:     req.BudgetRange,
		Description:     req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": request.ID, "message": "Request submitted successfully"})
}

// ListOpen shows open requests on the provider's island (Pro/VIP only).
func (h *RequestHandler) ListOpen(c *gin.Context) {
	requests, err := h.requestSvc.ListOpenForProvider(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// Respond submits a proposal on an open request.
func (h *RequestHandler) Respond(c *gin.Context) {
	providerID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req struct {
		ProposalDescription string  `json:"proposal_description" binding:"required"`
		ProposedPrice       float64 `json:"proposed_price" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.requestSvc.SubmitProposal(uint(id), providerID, req.ProposalDescription, req.ProposedPrice)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": resp.ID, "message": "Response submitted successfully"})
}
