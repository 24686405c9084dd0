package service

import (
	"errors"
	"testing"

	"github.com/mmeshcher/clubbooking-system/internal/model"
	"github.com/mmeshcher/clubbooking-system/internal/repository"
)

func newTestService() *Service {
	repo := repository.NewMemoryRepository()
	svc := NewService(repo, "abc@hdfcbank")

	svc.Register("john", "1234")
	svc.AddFacility(model.NewFacility(1, "Cricket Turf", 1200))
	svc.AddFacility(model.NewPremiumFacility(2, "Indoor Basketball Court", 1800, "Air-conditioned"))
	svc.AddFacility(model.NewFacility(3, "Pickleball Court", 900))

	return svc
}

func TestAuthenticateSetsSession(t *testing.T) {
	svc := newTestService()

	if err := svc.Authenticate("john", "1234"); err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if svc.CurrentUser() != "john" {
		t.Fatalf("CurrentUser() = %q, want %q", svc.CurrentUser(), "john")
	}
}

func TestAuthenticateFailureKeepsSession(t *testing.T) {
	svc := newTestService()

	if err := svc.Authenticate("john", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if svc.CurrentUser() != "" {
		t.Fatalf("failed login must leave the session anonymous")
	}

	if err := svc.Authenticate("john", "1234"); err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if err := svc.Authenticate("john", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if svc.CurrentUser() != "john" {
		t.Fatalf("failed login must not clear an existing session")
	}
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc := newTestService()

	if err := svc.Authenticate("ghost", "1234"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestReloginOverwritesSession(t *testing.T) {
	svc := newTestService()
	svc.Register("alice", "pass")

	if err := svc.Authenticate("john", "1234"); err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if err := svc.Authenticate("alice", "pass"); err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if svc.CurrentUser() != "alice" {
		t.Fatalf("CurrentUser() = %q, want %q", svc.CurrentUser(), "alice")
	}
}

func TestReregisterReplacesPassword(t *testing.T) {
	svc := newTestService()
	svc.Register("john", "new-secret")

	if err := svc.Authenticate("john", "1234"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password must stop authenticating, got %v", err)
	}
	if err := svc.Authenticate("john", "new-secret"); err != nil {
		t.Fatalf("new password must authenticate, got %v", err)
	}
}

func TestBookRequiresLogin(t *testing.T) {
	svc := newTestService()

	_, err := svc.Book(1, "08:00-09:00")
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}

	// проверка входа идёт раньше поиска объекта
	_, err = svc.Book(999, "nonsense")
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("login gate must fire before facility lookup, got %v", err)
	}

	if !svc.Facilities()[0].SlotAvailable("08:00-09:00") {
		t.Fatalf("rejected booking must not mutate the slot")
	}
}

func TestBookUnknownFacility(t *testing.T) {
	svc := newTestService()
	if err := svc.Authenticate("john", "1234"); err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}

	_, err := svc.Book(999, "08:00-09:00")
	if !errors.Is(err, repository.ErrFacilityNotFound) {
		t.Fatalf("expected ErrFacilityNotFound, got %v", err)
	}
}

func TestBookAndReleaseScenario(t *testing.T) {
	svc := newTestService()
	if err := svc.Authenticate("john", "1234"); err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}

	receipt, err := svc.Book(1, "08:00-09:00")
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if receipt.FacilityName != "Cricket Turf" {
		t.Fatalf("FacilityName = %q, want %q", receipt.FacilityName, "Cricket Turf")
	}
	if receipt.Amount != 1200 {
		t.Fatalf("Amount = %v, want 1200", receipt.Amount)
	}
	if receipt.PayTo != "abc@hdfcbank" {
		t.Fatalf("PayTo = %q, want %q", receipt.PayTo, "abc@hdfcbank")
	}

	if _, err := svc.Book(1, "08:00-09:00"); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("second booking must fail with ErrSlotUnavailable, got %v", err)
	}

	if err := svc.Release(1, "08:00-09:00"); err != nil {
		t.Fatalf("Release error: %v", err)
	}
	if !svc.Facilities()[0].SlotAvailable("08:00-09:00") {
		t.Fatalf("released slot must be available again")
	}
}

func TestBookUnknownSlot(t *testing.T) {
	svc := newTestService()
	if err := svc.Authenticate("john", "1234"); err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}

	if _, err := svc.Book(1, "12:00-13:00"); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("unknown slot must report ErrSlotUnavailable, got %v", err)
	}
}

func TestReleaseWithoutLogin(t *testing.T) {
	svc := newTestService()

	// освобождение, в отличие от бронирования, не требует входа
	if err := svc.Release(3, "09:00-10:00"); err != nil {
		t.Fatalf("anonymous release must succeed, got %v", err)
	}
}

func TestReleaseUnknownFacility(t *testing.T) {
	svc := newTestService()

	if err := svc.Release(999, "08:00-09:00"); !errors.Is(err, repository.ErrFacilityNotFound) {
		t.Fatalf("expected ErrFacilityNotFound, got %v", err)
	}
}
