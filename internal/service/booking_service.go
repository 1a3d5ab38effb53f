package service

import (
	"errors"
	"fmt"
	"time"

	"islandhop/internal/domain"
	"islandhop/internal/models"
	"islandhop/internal/repository"
	"islandhop/pkg/codegen"
	"islandhop/pkg/qrcode"

	"gorm.io/gorm"
)

var (
	ErrTripNotFound    = fmt.Errorf("trip %w", domain.ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("booking %w", domain.ErrNotFound)
	ErrNotBookingOwner = fmt.Errorf("%w: booking belongs to another provider", domain.ErrForbidden)
)

type BookingService struct {
	trips    *repository.TripRepository
	users    *repository.UserRepository
	bookings *repository.BookingRepository
}

func NewBookingService(
	trips *repository.TripRepository,
	users *repository.UserRepository,
	bookings *repository.BookingRepository,
) *BookingService {
	return &BookingService{trips: trips, users: users, bookings: bookings}
}

type CreateBookingInput struct {
	TripID          uint
	TouristName     string
	TouristWhatsapp string
	BookingDate     string
	NumPeople       int
	Notes           string
}

// Create books a trip at its listed per-person price. The total and the
// provider's commission are resolved here and frozen on the booking row;
// later subscription changes never reprice existing bookings.
func (s *BookingService) Create(in CreateBookingInput) (*models.Booking, error) {
	if in.NumPeople < 1 {
		return nil, fmt.Errorf("%w: num_people must be at least 1", domain.ErrValidation)
	}
	trip, err := s.trips.GetByID(in.TripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	provider, err := s.users.GetByID(trip.ProviderID)
	if err != nil {
		return nil, err
	}
	booking := newBooking(trip, provider, in.TouristName, in.TouristWhatsapp, in.BookingDate, in.NumPeople, in.Notes, trip.Price)
	if err := s.persistWithFreshCode(booking, trip.Title); err != nil {
		return nil, err
	}
	return booking, nil
}

// newBooking snapshots the amounts for a booking of numPeople at
// perPerson. Used for direct bookings and for accepted bids, where
// perPerson is the counter offer or the bid amount instead of the listed
// price.
func newBooking(trip *models.Trip, provider *models.User, touristName, whatsapp, date string, numPeople int, notes string, perPerson float64) *models.Booking {
	rate := provider.CommissionRate()
	total := perPerson * float64(numPeople)
	return &models.Booking{
		TripID:           trip.ID,
		ProviderID:       trip.ProviderID,
		TouristName:      touristName,
		TouristWhatsapp:  whatsapp,
		BookingDate:      date,
		NumPeople:        numPeople,
		Notes:            notes,
		TotalAmount:      total,
		CommissionRate:   rate,
		CommissionAmount: total * rate,
		Status:           domain.BookingPending,
		PaymentStatus:    domain.PaymentPending,
	}
}

// stampCode assigns a fresh booking code and re-renders the QR pass so
// the artifact always matches the stored code.
func stampCode(b *models.Booking, tripTitle string) error {
	b.BookingCode = codegen.Code(domain.BookingCodeLength)
	pass, err := qrcode.BookingPass(qrcode.Payload{
		BookingCode: b.BookingCode,
		TripTitle:   tripTitle,
		Tourist:     b.TouristName,
		Date:        b.BookingDate,
		People:      b.NumPeople,
		Amount:      b.TotalAmount,
	})
	if err != nil {
		return err
	}
	b.QRCode = pass
	return nil
}

// persistWithFreshCode inserts the booking, retrying once with a new code
// if storage rejects it as a duplicate. A second collision surfaces as an
// internal error.
func (s *BookingService) persistWithFreshCode(b *models.Booking, tripTitle string) error {
	if err := stampCode(b, tripTitle); err != nil {
		return err
	}
	err := s.bookings.Create(b)
	if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	if err := stampCode(b, tripTitle); err != nil {
		return err
	}
	return s.bookings.Create(b)
}

// UpdateStatus lets the owning provider move a booking's status and
// payment status. Any known status may be written regardless of the
// current one; only completed_at gets special treatment, stamped once on
// the first transition to completed.
func (s *BookingService) UpdateStatus(bookingID, providerID uint, status, paymentStatus string) error {
	if status == "" && paymentStatus == "" {
		return fmt.Errorf("%w: nothing to update", domain.ErrValidation)
	}
	if status != "" && !domain.ValidBookingStatus(status) {
		return fmt.Errorf("%w: unknown booking status %q", domain.ErrValidation, status)
	}
	if paymentStatus != "" && !domain.ValidPaymentStatus(paymentStatus) {
		return fmt.Errorf("%w: unknown payment status %q", domain.ErrValidation, paymentStatus)
	}
	b, err := s.bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if b.ProviderID != providerID {
		return ErrNotBookingOwner
	}
	updates := map[string]interface{}{}
	if status != "" {
		updates["status"] = status
		if status == domain.BookingCompleted && b.CompletedAt == nil {
			now := time.Now()
			updates["completed_at"] = &now
		}
	}
	if paymentStatus != "" {
		updates["payment_status"] = paymentStatus
	}
	return s.bookings.UpdateFields(bookingID, updates)
}

// LookupByCode is the public confirmation-page lookup. It returns only
// the one booking matching the code; there is nothing to enumerate.
func (s *BookingService) LookupByCode(code string) (*models.Booking, error) {
	b, err := s.bookings.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}
