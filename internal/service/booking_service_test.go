package service

import (
	"errors"
	"strings"
	"testing"

	"islandhop/internal/domain"
	"islandhop/internal/models"
	"islandhop/internal/repository"
)

func TestCreateBookingSnapshotsCommission(t *testing.T) {
	db := testDB(t)
	provider := seedProvider(t, db, "pro@example.com", domain.SubscriptionPro, nil)
	trip := seedTrip(t, db, provider.ID, "Sunset Cruise", 150)
	svc := NewBookingService(
		repository.NewTripRepository(db),
		repository.NewUserRepository(db),
		repository.NewBookingRepository(db),
	)

	b, err := svc.Create(CreateBookingInput{
		TripID:          trip.ID,
		TouristName:     "Anna",
		TouristWhatsapp: "+4915200000000",
		BookingDate:     "2026-09-15",
		NumPeople:       3,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.TotalAmount != 450 {
		t.Errorf("TotalAmount = %v, want 450", b.TotalAmount)
	}
	if b.CommissionRate != 0.08 {
		t.Errorf("CommissionRate = %v, want 0.08", b.CommissionRate)
	}
	if b.CommissionAmount != 36 {
		t.Errorf("CommissionAmount = %v, want 36", b.CommissionAmount)
	}
	if b.Status != domain.BookingPending || b.PaymentStatus != domain.PaymentPending {
		t.Errorf("status = %q/%q, want pending/pending", b.Status, b.PaymentStatus)
	}
	if len(b.BookingCode) != domain.BookingCodeLength {
		t.Errorf("BookingCode %q has length %d, want %d", b.BookingCode, len(b.BookingCode), domain.BookingCodeLength)
	}
	if b.BookingCode != strings.ToUpper(b.BookingCode) {
		t.Errorf("BookingCode %q is not uppercase", b.BookingCode)
	}
	if !strings.HasPrefix(b.QRCode, "data:image/png;base64,") {
		t.Errorf("QRCode does not carry a PNG data URL")
	}
}

func TestCreateBookingCustomRateWins(t *testing.T) {
	db := testDB(t)
	provider := seedProvider(t, db, "custom@example.com", domain.SubscriptionFree, floatPtr(0.10))
	trip := seedTrip(t, db, provider.ID, "Island Hopping", 100)
	svc := NewBookingService(
		repository.NewTripRepository(db),
		repository.NewUserRepository(db),
		repository.NewBookingRepository(db),
	)

	b, err := svc.Create(CreateBookingInput{
		TripID:          trip.ID,
		TouristName:     "Ben",
		TouristWhatsapp: "+33600000000",
		BookingDate:     "2026-10-01",
		NumPeople:       2,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.CommissionRate != 0.10 {
		t.Errorf("CommissionRate = %v, want custom 0.10", b.CommissionRate)
	}
	if b.CommissionAmount != 20 {
		t.Errorf("CommissionAmount = %v, want 20", b.CommissionAmount)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	db := testDB(t)
	provider := seedProvider(t, db, "val@example.com", domain.SubscriptionFree, nil)
	trip := seedTrip(t, db, provider.ID, "Reef Dive", 80)
	svc := NewBookingService(
		repository.NewTripRepository(db),
		repository.NewUserRepository(db),
		repository.NewBookingRepository(db),
	)

	_, err := svc.Create(CreateBookingInput{TripID: trip.ID, TouristName: "X", NumPeople: 0})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("zero people: err = %v, want ErrValidation", err)
	}

	_, err = svc.Create(CreateBookingInput{TripID: 9999, TouristName: "X", NumPeople: 1})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown trip: err = %v, want ErrNotFound", err)
	}
}

func TestLookupByCodeIgnoresCase(t *testing.T) {
	db := testDB(t)
	provider := seedProvider(t, db, "code@example.com", domain.SubscriptionFree, nil)
	trip := seedTrip(t, db, provider.ID, "Kayak Tour", 60)
	svc := NewBookingService(
		repository.NewTripRepository(db),
		repository.NewUserRepository(db),
		repository.NewBookingRepository(db),
	)

	b, err := svc.Create(CreateBookingInput{
		TripID:          trip.ID,
		TouristName:     "Cleo",
		TouristWhatsapp: "+15550000000",
		BookingDate:     "2026-11-20",
		NumPeople:       1,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := svc.LookupByCode(strings.ToLower(b.BookingCode))
	if err != nil {
		t.Fatalf("LookupByCode lowercase: %v", err)
	}
	if found.ID != b.ID {
		t.Errorf("LookupByCode returned booking %d, want %d", found.ID, b.ID)
	}

	if _, err := svc.LookupByCode("NOSUCHCODE"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown code: err = %v, want ErrNotFound", err)
	}
}

func TestUpdateStatusOwnership(t *testing.T) {
	db := testDB(t)
	owner := seedProvider(t, db, "owner@example.com", domain.SubscriptionFree, nil)
	other := seedProvider(t, db, "other@example.com", domain.SubscriptionFree, nil)
	trip := seedTrip(t, db, owner.ID, "Hiking", 40)
	svc := NewBookingService(
		repository.NewTripRepository(db),
		repository.NewUserRepository(db),
		repository.NewBookingRepository(db),
	)

	b, err := svc.Create(CreateBookingInput{
		TripID: trip.ID, TouristName: "Dan", TouristWhatsapp: "+10000000000",
		BookingDate: "2026-12-01", NumPeople: 2,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.UpdateStatus(b.ID, other.ID, domain.BookingConfirmed, ""); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("foreign provider: err = %v, want ErrForbidden", err)
	}
	if err := svc.UpdateStatus(b.ID, owner.ID, "shipped", ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("unknown status: err = %v, want ErrValidation", err)
	}
	if err := svc.UpdateStatus(b.ID, owner.ID, "", ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty update: err = %v, want ErrValidation", err)
	}
	if err := svc.UpdateStatus(b.ID, owner.ID, domain.BookingConfirmed, domain.PaymentPaid); err != nil {
		t.Fatalf("owner update: %v", err)
	}

	var got models.Booking
	if err := db.First(&got, b.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != domain.BookingConfirmed || got.PaymentStatus != domain.PaymentPaid {
		t.Errorf("status = %q/%q, want confirmed/paid", got.Status, got.PaymentStatus)
	}
}

func TestUpdateStatusStampsCompletedOnce(t *testing.T) {
	db := testDB(t)
	provider := seedProvider(t, db, "done@example.com", domain.SubscriptionFree, nil)
	trip := seedTrip(t, db, provider.ID, "Fishing", 90)
	svc := NewBookingService(
		repository.NewTripRepository(db),
		repository.NewUserRepository(db),
		repository.NewBookingRepository(db),
	)

	b, err := svc.Create(CreateBookingInput{
		TripID: trip.ID, TouristName: "Eve", TouristWhatsapp: "+20000000000",
		BookingDate: "2026-12-05", NumPeople: 1,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.UpdateStatus(b.ID, provider.ID, domain.BookingCompleted, ""); err != nil {
		t.Fatalf("complete: %v", err)
	}
	var first models.Booking
	if err := db.First(&first, b.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if first.CompletedAt == nil {
		t.Fatal("completed_at not stamped on first completion")
	}

	// Reopen and complete again; the original stamp must survive.
	if err := svc.UpdateStatus(b.ID, provider.ID, domain.BookingConfirmed, ""); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := svc.UpdateStatus(b.ID, provider.ID, domain.BookingCompleted, ""); err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	var second models.Booking
	if err := db.First(&second, b.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if second.CompletedAt == nil || !second.CompletedAt.Equal(*first.CompletedAt) {
		t.Errorf("completed_at changed on re-completion: %v -> %v", first.CompletedAt, second.CompletedAt)
	}
}
