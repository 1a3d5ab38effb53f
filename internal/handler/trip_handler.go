package handler

import (
	"errors"
	"net/http"
	"strconv"

	"islandhop/internal/domain"
	"islandhop/internal/middleware"
	"islandhop/internal/models"
	"islandhop/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TripHandler struct {
	tripRepo *repository.TripRepository
}

func NewTripHandler(tripRepo *repository.TripRepository) *TripHandler {
	return &TripHandler{tripRepo: tripRepo}
}

func tripEntry(t *models.Trip, withProviderDescription bool) gin.H {
	entry := gin.H{
		"id":              t.ID,
		"provider_id":     t.ProviderID,
		"title":           t.Title,
		"description":     t.Description,
		"island":          t.Island,
		"duration":        t.Duration,
		"price":           t.Price,
		"max_group_size":  t.MaxGroupSize,
		"activity_type":   t.ActivityType,
		"included_items":  t.IncludedItems,
		"optional_addons": t.OptionalAddons,
		"images":          t.Images,
		"status":          t.Status,
		"created_at":      t.CreatedAt,
		"provider_name":   t.Provider.Name,
		"provider_phone":  t.Provider.Phone,
	}
	if withProviderDescription {
		entry["provider_description"] = t.Provider.Description
	}
	return entry
}

// Search is the public trip listing with island/activity/price filters.
func (h *TripHandler) Search(c *gin.Context) {
	minPrice, _ := strconv.ParseFloat(c.Query("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(c.Query("max_price"), 64)
	trips, err := h.tripRepo.Search(repository.TripFilter{
		Island:       c.Query("island"),
		ActivityType: c.Query("activity_type"),
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	out := make([]gin.H, 0, len(trips))
	for i := range trips {
		out = append(out, tripEntry(&trips[i], false))
	}
	c.JSON(http.StatusOK, out)
}

// Detail is the public trip page.
func (h *TripHandler) Detail(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	trip, err := h.tripRepo.GetDetail(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "trip not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, tripEntry(trip, true))
}

// Islands lists distinct islands with active trips, for the search filter.
func (h *TripHandler) Islands(c *gin.Context) {
	islands, err := h.tripRepo.Islands()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, islands)
}

type tripRequest struct {
	Title          string  `json:"title" binding:"required"`
	Description    string  `json:"description"`
	Island         string  `json:"island" binding:"required"`
	Duration       string  `json:"duration"`
	Price          float64 `json:"price" binding:"required,gt=0"`
	MaxGroupSize   *int    `json:"max_group_size" binding:"omitempty,gt=0"`
	ActivityType   string  `json:"activity_type"`
	IncludedItems  string  `json:"included_items"`
	OptionalAddons string  `json:"optional_addons"`
	Images         string  `json:"images"`
}

func (h *TripHandler) Create(c *gin.Context) {
	providerID := middleware.GetUserID(c)
	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	trip := &models.Trip{
		ProviderID:     providerID,
		Title:          req.Title,
		Description:    req.Description,
		Island:         req.Island,
		Duration:       req.Duration,
		Price:          req.Price,
		MaxGroupSize:   req.MaxGroupSize,
		ActivityType:   req.ActivityType,
		IncludedItems:  req.IncludedItems,
		OptionalAddons: req.OptionalAddons,
		Images:         req.Images,
		Status:         domain.TripActive,
	}
	if err := h.tripRepo.Create(trip); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": trip.ID, "message": "Trip created successfully"})
}

func (h *TripHandler) Update(c *gin.Context) {
	providerID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req struct {
		tripRequest
		Status string `json:"status" binding:"omitempty,oneof=active inactive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updates := map[string]interface{}{
		"title":           req.Title,
		"description":     req.Description,
		"island":          req.Island,
		"duration":        req.Duration,
		"price":           req.Price,
		"max_group_size":  req.MaxGroupSize,
		"activity_type":   req.ActivityType,
		"included_items":  req.IncludedItems,
		"optional_addons": req.OptionalAddons,
		"images":          req.Images,
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	rows, err := h.tripRepo.UpdateOwned(uint(id), providerID, updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "trip not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trip updated successfully"})
}

// ListMine returns the authenticated provider's trips.
func (h *TripHandler) ListMine(c *gin.Context) {
	trips, err := h.tripRepo.ListByProvider(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, trips)
}
