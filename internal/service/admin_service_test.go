package service

import (
	"context"
	"errors"
	"testing"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/events"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/repository"
	apperrors "github.com/InnovationLadders/myprojectplateform12-sub002/pkg/util"
)

func adminActor() *domain.Profile {
	return &domain.Profile{ID: "admin-1", Role: domain.RoleAdmin, Status: domain.StatusActive}
}

func pendingConsultant() *domain.Profile {
	return &domain.Profile{ID: "c1", Role: domain.RoleConsultant, Status: domain.StatusPending}
}

func httpStatusOf(t *testing.T, err error) int {
	t.Helper()
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	return de.HTTPStatus
}

func TestApproveActivatesAndStamps(t *testing.T) {
	stored := pendingConsultant()
	var updated *domain.Profile
	repo := &mockProfileRepo{
		getByID: func(context.Context, string) (*domain.Profile, error) { return stored, nil },
		update: func(_ context.Context, p *domain.Profile) error {
			updated = p
			return nil
		},
	}
	cache := newMemProfileCache()
	cache.profiles["c1"] = pendingConsultant()
	dispatcher := &mockDispatcher{}
	svc := NewAdminService(repo, cache, dispatcher)

	profile, err := svc.Approve(context.Background(), adminActor(), "c1")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if profile.Status != domain.StatusActive {
		t.Errorf("status = %s, want active", profile.Status)
	}
	if profile.ApprovedBy == nil || *profile.ApprovedBy != "admin-1" {
		t.Errorf("ApprovedBy = %v, want admin-1", profile.ApprovedBy)
	}
	if profile.ApprovedAt == nil {
		t.Error("ApprovedAt not stamped")
	}
	if updated == nil {
		t.Fatal("approved profile not persisted")
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != "c1" {
		t.Errorf("cache invalidations = %v, want [c1]", cache.invalidated)
	}
	if len(dispatcher.published) != 1 || dispatcher.published[0].Type != events.EventAccountApproved {
		t.Errorf("events = %+v, want one AccountApproved", dispatcher.published)
	}
}

func TestRejectStampsAndCarriesReason(t *testing.T) {
	stored := &domain.Profile{ID: "s1", Role: domain.RoleSchool, Status: domain.StatusPending}
	var updated *domain.Profile
	repo := &mockProfileRepo{
		getByID: func(context.Context, string) (*domain.Profile, error) { return stored, nil },
		update: func(_ context.Context, p *domain.Profile) error {
			updated = p
			return nil
		},
	}
	dispatcher := &mockDispatcher{}
	svc := NewAdminService(repo, nil, dispatcher)

	profile, err := svc.Reject(context.Background(), adminActor(), "s1", "missing license")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if profile.Status != domain.StatusRejected {
		t.Errorf("status = %s, want rejected", profile.Status)
	}
	if profile.RejectedBy == nil || *profile.RejectedBy != "admin-1" {
		t.Errorf("RejectedBy = %v", profile.RejectedBy)
	}
	// The reason is stored on the record, not only in the event, so the
	// activation page can show it.
	if updated == nil || updated.RejectionReason == nil || *updated.RejectionReason != "missing license" {
		t.Errorf("persisted RejectionReason = %v, want missing license", updated)
	}

	if len(dispatcher.published) != 1 {
		t.Fatalf("events = %+v", dispatcher.published)
	}
	payload, ok := dispatcher.published[0].Payload.(events.AccountRejectedPayload)
	if !ok || payload.Reason != "missing license" {
		t.Errorf("payload = %+v, want reason carried", dispatcher.published[0].Payload)
	}
}

func TestApproveNonPendingConflicts(t *testing.T) {
	stored := &domain.Profile{ID: "c1", Role: domain.RoleConsultant, Status: domain.StatusActive}
	repo := &mockProfileRepo{
		getByID: func(context.Context, string) (*domain.Profile, error) { return stored, nil },
	}
	svc := NewAdminService(repo, nil, nil)

	_, err := svc.Approve(context.Background(), adminActor(), "c1")
	if got := httpStatusOf(t, err); got != 409 {
		t.Fatalf("approve active account: status %d, want 409", got)
	}
}

func TestAdminOperationsRequireAdmin(t *testing.T) {
	svc := NewAdminService(&mockProfileRepo{}, nil, nil)
	student := &domain.Profile{ID: "s1", Role: domain.RoleStudent, Status: domain.StatusActive}

	if _, err := svc.Approve(context.Background(), student, "c1"); httpStatusOf(t, err) != 403 {
		t.Error("non-admin approve must be forbidden")
	}
	if _, err := svc.ListRegistrations(context.Background(), student, repository.ProfileFilter{}); httpStatusOf(t, err) != 403 {
		t.Error("non-admin list must be forbidden")
	}
	if err := svc.DeleteUser(context.Background(), student, "c1"); httpStatusOf(t, err) != 403 {
		t.Error("non-admin delete must be forbidden")
	}
}

func TestApproveUnknownProfile(t *testing.T) {
	repo := &mockProfileRepo{
		getByID: func(context.Context, string) (*domain.Profile, error) {
			return nil, &repository.StoreError{Kind: repository.KindNotFound, Op: "profiles.get"}
		},
	}
	svc := NewAdminService(repo, nil, nil)

	_, err := svc.Approve(context.Background(), adminActor(), "ghost")
	if got := httpStatusOf(t, err); got != 404 {
		t.Fatalf("unknown profile: status %d, want 404", got)
	}
}

func TestDeleteUserInvalidatesCache(t *testing.T) {
	repo := &mockProfileRepo{
		delete: func(context.Context, string) error { return nil },
	}
	cache := newMemProfileCache()
	svc := NewAdminService(repo, cache, nil)

	if err := svc.DeleteUser(context.Background(), adminActor(), "u1"); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if len(cache.invalidated) != 1 {
		t.Errorf("cache invalidations = %v", cache.invalidated)
	}
}
