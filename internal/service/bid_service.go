package service

import (
	"errors"
	"fmt"

	"islandhop/internal/domain"
	"islandhop/internal/models"
	"islandhop/internal/repository"

	"gorm.io/gorm"
)

var ErrBidNotFound = fmt.Errorf("bid %w", domain.ErrNotFound)

type BidService struct {
	bids  *repository.BidRepository
	trips *repository.TripRepository
	users *repository.UserRepository
}

func NewBidService(
	bids *repository.BidRepository,
	trips *repository.TripRepository,
	users *repository.UserRepository,
) *BidService {
	return &BidService{bids: bids, trips: trips, users: users}
}

type CreateBidInput struct {
	TripID          uint
	TouristName     string
	TouristWhatsapp string
	ProposedDate    string
	NumPeople       int
	BidAmount       float64
	Notes           string
}

// Create records a tourist's per-person price proposal. The provider is
// copied from the trip at this moment. Any positive amount is accepted;
// there is no floor against the listed price.
func (s *BidService) Create(in CreateBidInput) (*models.Bid, error) {
	if in.NumPeople < 1 {
		return nil, fmt.Errorf("%w: num_people must be at least 1", domain.ErrValidation)
	}
	if in.BidAmount <= 0 {
		return nil, fmt.Errorf("%w: bid_amount must be positive", domain.ErrValidation)
	}
	trip, err := s.trips.GetByID(in.TripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	bid := &models.Bid{
		TripID:          trip.ID,
		ProviderID:      trip.ProviderID,
		TouristName:     in.TouristName,
		TouristWhatsapp: in.TouristWhatsapp,
		ProposedDate:    in.ProposedDate,
		NumPeople:       in.NumPeople,
		BidAmount:       in.BidAmount,
		Notes:           in.Notes,
		Status:          domain.BidPending,
	}
	if err := s.bids.Create(bid); err != nil {
		return nil, err
	}
	return bid, nil
}

type RespondToBidInput struct {
	BidID            uint
	ProviderID       uint
	Status           string // accepted | declined | countered
	ProviderResponse string
	CounterOffer     *float64 // per person
}

// Respond records the provider's decision. Acceptance synthesizes a
// booking at the effective per-person price (counter offer if given, else
// the bid amount) in the same transaction that flips the bid, so a second
// acceptance gets a Conflict instead of a second booking.
func (s *BidService) Respond(in RespondToBidInput) (*models.Bid, error) {
	if !domain.ValidBidResponse(in.Status) {
		return nil, fmt.Errorf("%w: unknown bid response %q", domain.ErrValidation, in.Status)
	}
	bid, err := s.bids.GetForProvider(in.BidID, in.ProviderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, err
	}

	if in.Status != domain.BidAccepted {
		if err := s.bids.Respond(bid.ID, in.Status, in.ProviderResponse, in.CounterOffer); err != nil {
			return nil, err
		}
		bid.Status = in.Status
		bid.ProviderResponse = in.ProviderResponse
		bid.CounterOffer = in.CounterOffer
		return bid, nil
	}

	trip, err := s.trips.GetByID(bid.TripID)
	if err != nil {
		return nil, err
	}
	provider, err := s.users.GetByID(bid.ProviderID)
	if err != nil {
		return nil, err
	}
	perPerson := bid.BidAmount
	if in.CounterOffer != nil {
		perPerson = *in.CounterOffer
	}
	booking := newBooking(trip, provider, bid.TouristName, bid.TouristWhatsapp, bid.ProposedDate, bid.NumPeople, bid.Notes, perPerson)
	if err := stampCode(booking, trip.Title); err != nil {
		return nil, err
	}
	err = s.bids.Accept(bid.ID, in.ProviderID, in.ProviderResponse, in.CounterOffer, booking)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Booking code collided; retry once with a fresh one.
		booking.ID = 0
		if err = stampCode(booking, trip.Title); err != nil {
			return nil, err
		}
		err = s.bids.Accept(bid.ID, in.ProviderID, in.ProviderResponse, in.CounterOffer, booking)
	}
	if err != nil {
		return nil, err
	}
	bid.Status = domain.BidAccepted
	bid.ProviderResponse = in.ProviderResponse
	bid.CounterOffer = in.CounterOffer
	bid.BookingID = &booking.ID
	bid.Booking = booking
	return bid, nil
}

// ListForProvider returns the provider's bid inbox. This is a capability
// gate on the subscription tier, not a data-ownership check: free-tier
// providers are paywalled even from their own bids.
func (s *BidService) ListForProvider(providerID uint) ([]models.Bid, error) {
	provider, err := s.users.GetByID(providerID)
	if err != nil {
		return nil, err
	}
	if !provider.HasBidAccess() {
		return nil, domain.ErrPaywall
	}
	return s.bids.ListByProvider(providerID)
}
