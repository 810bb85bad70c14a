package service

import (
	"errors"
	"testing"
	"time"

	"github.com/storefront-api/internal/constants"
)

func TestCustomerMeIsCreatedLazily(t *testing.T) {
	env := newTestEnv(t, nil)
	user := env.seedUser(t, "lazy@example.com", false)

	first, err := env.customers.Me(user.ID)
	if err != nil {
		t.Fatalf("me failed: %v", err)
	}
	second, err := env.customers.Me(user.ID)
	if err != nil {
		t.Fatalf("second me failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("get-or-create should be idempotent, got %d and %d", first.ID, second.ID)
	}
	if first.Membership != constants.MembershipBronze || first.OrdersCount != 0 {
		t.Fatalf("unexpected fresh profile: %+v", first)
	}
}

func TestCustomerUpdateMe(t *testing.T) {
	env := newTestEnv(t, nil)
	user := env.seedUser(t, "upd@example.com", false)

	bad := "Z"
	if _, err := env.customers.UpdateMe(user.ID, UpdateProfileInput{Membership: &bad}); !errors.Is(err, ErrMembershipInvalid) {
		t.Fatalf("expected membership invalid, got %v", err)
	}
	gold := "g"
	phone := " 555-0100 "
	profile, err := env.customers.UpdateMe(user.ID, UpdateProfileInput{Membership: &gold, Phone: &phone})
	if err != nil {
		t.Fatalf("update me failed: %v", err)
	}
	if profile.Membership != constants.MembershipGold || profile.Phone != "555-0100" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	reloaded, _ := env.customers.Me(user.ID)
	if reloaded.Membership != constants.MembershipGold {
		t.Fatalf("membership not persisted: %+v", reloaded)
	}
}

func TestCustomerHistoryNotFound(t *testing.T) {
	env := newTestEnv(t, nil)
	if _, err := env.customers.History(12345); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected customer not found, got %v", err)
	}
}

func TestCustomerUpdateMeBirthDate(t *testing.T) {
	env := newTestEnv(t, nil)
	user := env.seedUser(t, "birthday@example.com", false)

	birth := time.Date(1990, time.May, 17, 15, 30, 0, 0, time.UTC)
	profile, err := env.customers.UpdateMe(user.ID, UpdateProfileInput{BirthDate: &birth})
	if err != nil {
		t.Fatalf("update birth date failed: %v", err)
	}
	if profile.BirthDate == nil || *profile.BirthDate != "1990-05-17" {
		t.Fatalf("unexpected birth date: %v", profile.BirthDate)
	}
}
