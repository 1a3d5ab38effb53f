package service

import (
	"errors"
	"testing"

	"islandhop/internal/domain"
	"islandhop/internal/models"
	"islandhop/internal/repository"

	"gorm.io/gorm"
)

func newRequestService(db *gorm.DB) *RequestService {
	return NewRequestService(
		repository.NewRequestRepository(db),
		repository.NewUserRepository(db),
	)
}

func seedRequest(t *testing.T, db *gorm.DB, island string) *models.TripRequest {
	t.Helper()
	req := &models.TripRequest{
		TouristName:     "Kim",
		TouristWhatsapp: "+60100000000",
		Island:          island,
		NumPeople:       2,
		ActivityType:    "hiking",
		Status:          domain.RequestOpen,
	}
	if err := db.Create(req).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}
	return req
}

func TestRequestBoardScopedToIsland(t *testing.T) {
	db := testDB(t)
	provider := seedProvider(t, db, "board@example.com", domain.SubscriptionPro, nil) // island Mahé
	svc := newRequestService(db)

	mine := seedRequest(t, db, "Mahé")
	seedRequest(t, db, "Praslin")

	requests, err := svc.ListOpenForProvider(provider.ID)
	if err != nil {
		t.Fatalf("ListOpenForProvider: %v", err)
	}
	if len(requests) != 1 || requests[0].ID != mine.ID {
		t.Errorf("board shows %d requests, want only the Mahé one", len(requests))
	}
}

func TestRequestBoardPaywalled(t *testing.T) {
	db := testDB(t)
	free := seedProvider(t, db, "freeboard@example.com", domain.SubscriptionFree, nil)
	svc := newRequestService(db)
	seedRequest(t, db, "Mahé")

	if _, err := svc.ListOpenForProvider(free.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("free tier board: err = %v, want ErrForbidden", err)
	}
}

func TestSubmitProposal(t *testing.T) {
	db := testDB(t)
	provider := seedProvider(t, db, "proposal@example.com", domain.SubscriptionPro, nil)
	svc := newRequestService(db)
	req := seedRequest(t, db, "Mahé")

	resp, err := svc.SubmitProposal(req.ID, provider.ID, "Private hike with lunch", 180)
	if err != nil {
		t.Fatalf("SubmitProposal: %v", err)
	}
	if resp.Status != domain.ResponsePending {
		t.Errorf("Status = %q, want pending", resp.Status)
	}

	// Multiple proposals on the same request are allowed.
	if _, err := svc.SubmitProposal(req.ID, provider.ID, "Cheaper option, no lunch", 120); err != nil {
		t.Errorf("second proposal: %v", err)
	}

	if _, err := svc.SubmitProposal(9999, provider.ID, "ghost", 50); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown request: err = %v, want ErrNotFound", err)
	}
	if _, err := svc.SubmitProposal(req.ID, provider.ID, "free", 0); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("zero price: err = %v, want ErrValidation", err)
	}
}

func TestCreateRequestValidation(t *testing.T) {
	db := testDB(t)
	svc := newRequestService(db)

	_, err := svc.Create(CreateRequestInput{TouristName: "Lea", Island: "", NumPeople: 2})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("missing island: err = %v, want ErrValidation", err)
	}
	_, err = svc.Create(CreateRequestInput{TouristName: "Lea", Island: "La Digue", NumPeople: 0})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("zero people: err = %v, want ErrValidation", err)
	}

	req, err := svc.Create(CreateRequestInput{
		TouristName: "Lea", TouristWhatsapp: "+32400000000", Island: "La Digue", NumPeople: 3,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if req.Status != domain.RequestOpen {
		t.Errorf("Status = %q, want open", req.Status)
	}
}
