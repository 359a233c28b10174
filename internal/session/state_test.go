package session

import (
	"errors"
	"testing"
	"time"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
)

func TestEntryStatus(t *testing.T) {
	cases := []struct {
		role domain.Role
		want domain.AccountStatus
	}{
		{domain.RoleStudent, domain.StatusActive},
		{domain.RoleTeacher, domain.StatusActive},
		{domain.RoleAdmin, domain.StatusActive},
		{domain.RoleSchool, domain.StatusPending},
		{domain.RoleConsultant, domain.StatusPending},
	}
	for _, tc := range cases {
		if got := domain.EntryStatus(tc.role); got != tc.want {
			t.Errorf("EntryStatus(%s) = %s, want %s", tc.role, got, tc.want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	if !CanTransition(domain.StatusPending, domain.StatusActive) {
		t.Error("pending -> active must be allowed")
	}
	if !CanTransition(domain.StatusPending, domain.StatusRejected) {
		t.Error("pending -> rejected must be allowed")
	}

	blocked := []struct{ from, to domain.AccountStatus }{
		{domain.StatusActive, domain.StatusPending},
		{domain.StatusActive, domain.StatusRejected},
		{domain.StatusRejected, domain.StatusActive},
		{domain.StatusSuspended, domain.StatusActive},
		{domain.StatusPending, domain.StatusSuspended},
	}
	for _, tc := range blocked {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s must be blocked", tc.from, tc.to)
		}
	}
}

func TestApproveStampsAdmin(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := &domain.Profile{Status: domain.StatusPending}

	if err := Approve(p, "admin-1", now); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if p.Status != domain.StatusActive {
		t.Errorf("status = %s, want active", p.Status)
	}
	if p.ApprovedAt == nil || !p.ApprovedAt.Equal(now) {
		t.Errorf("ApprovedAt = %v, want %v", p.ApprovedAt, now)
	}
	if p.ApprovedBy == nil || *p.ApprovedBy != "admin-1" {
		t.Errorf("ApprovedBy = %v, want admin-1", p.ApprovedBy)
	}
}

func TestRejectStampsAdmin(t *testing.T) {
	now := time.Now()
	p := &domain.Profile{Status: domain.StatusPending}

	if err := Reject(p, "admin-2", now); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if p.Status != domain.StatusRejected {
		t.Errorf("status = %s, want rejected", p.Status)
	}
	if p.RejectedBy == nil || *p.RejectedBy != "admin-2" {
		t.Errorf("RejectedBy = %v, want admin-2", p.RejectedBy)
	}
}

func TestApproveNonPendingFails(t *testing.T) {
	p := &domain.Profile{Status: domain.StatusActive}

	err := Approve(p, "admin-1", time.Now())
	var te *TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	if te.From != domain.StatusActive || te.To != domain.StatusActive {
		t.Errorf("TransitionError = %+v", te)
	}
	if p.ApprovedAt != nil {
		t.Error("failed approve must not stamp the profile")
	}
}

func TestRejectRejectedFails(t *testing.T) {
	p := &domain.Profile{Status: domain.StatusRejected}
	if err := Reject(p, "admin-1", time.Now()); err == nil {
		t.Fatal("rejecting a rejected profile must fail")
	}
}
