package service

import (
	"errors"
	"fmt"

	"islandhop/internal/domain"
	"islandhop/internal/models"
	"islandhop/internal/repository"

	"gorm.io/gorm"
)

var ErrRequestNotFound = fmt.Errorf("request %w", domain.ErrNotFound)

type RequestService struct {
	requests *repository.RequestRepository
	users    *repository.UserRepository
}

func NewRequestService(
	requests *repository.RequestRepository,
	users *repository.UserRepository,
) *RequestService {
	return &RequestService{requests: requests, users: users}
}

type CreateRequestInput struct {
	TouristName     string
	TouristWhatsapp string
	Island          string
	PreferredDate   string
	NumPeople       int
	ActivityType    string
	BudgetRange     string
	Description     string
}

// Create posts a custom excursion request. Requests open and stay open;
// nothing closes them yet.
func (s *RequestService) Create(in CreateRequestInput) (*models.TripRequest, error) {
	if in.NumPeople < 1 {
		return nil, fmt.Errorf("%w: num_people must be at least 1", domain.ErrValidation)
	}
	if in.Island == "" {
		return nil, fmt.Errorf("%w: island is required", domain.ErrValidation)
	}
	req := &models.TripRequest{
		TouristName:     in.TouristName,
		TouristWhatsapp: in.TouristWhatsapp,
		Island:          in.Island,
		PreferredDate:   in.PreferredDate,
		NumPeople:       in.NumPeople,
		ActivityType:    in.ActivityType,
		BudgetRange:     in.BudgetRange,
		Description:     in.Description,
		Status:          domain.RequestOpen,
	}
	if err := s.requests.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

// ListOpenForProvider shows the request board for the provider's own
// island. Pro/VIP only; the gate ignores custom commission rates.
func (s *RequestService) ListOpenForProvider(providerID uint) ([]models.TripRequest, error) {
	provider, err := s.users.GetByID(providerID)
	if err != nil {
		return nil, err
	}
	if !provider.HasBidAccess() {
		return nil, domain.ErrPaywall
	}
	return s.requests.ListOpenByIsland(provider.Island)
}

// SubmitProposal appends a proposal to an open request. A provider may
// propose more than once on the same request.
func (s *RequestService) SubmitProposal(requestID, providerID uint, description string, price float64) (*models.RequestResponse, error) {
	if price <= 0 {
		return nil, fmt.Errorf("%w: proposed_price must be positive", domain.ErrValidation)
	}
	if _, err := s.requests.GetByID(requestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	resp := &models.RequestResponse{
		RequestID:           requestID,
		ProviderID:          providerID,
		ProposalDescription: description,
		ProposedPrice:       price,
		Status:              domain.ResponsePending,
	}
	if err := s.requests.CreateResponse(resp); err != nil {
		return nil, err
	}
	return resp, nil
}
