package session

import (
	"fmt"
	"time"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
)

// TransitionError reports a status change that the activation policy forbids.
type TransitionError struct {
	From domain.AccountStatus
	To   domain.AccountStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("status transition %s -> %s not allowed", e.From, e.To)
}

// CanTransition reports whether the activation policy permits moving a
// profile between the given statuses. Only pending accounts move, and only
// to active or rejected; rejected and suspended are terminal here.
func CanTransition(from, to domain.AccountStatus) bool {
	if from != domain.StatusPending {
		return false
	}
	return to == domain.StatusActive || to == domain.StatusRejected
}

// Approve transitions a pending profile to active and stamps the acting
// admin. Non-pending profiles are rejected by policy, never silently reset.
func Approve(profile *domain.Profile, adminID string, now time.Time) error {
	if !CanTransition(profile.Status, domain.StatusActive) {
		return &TransitionError{From: profile.Status, To: domain.StatusActive}
	}
	profile.Status = domain.StatusActive
	profile.ApprovedAt = &now
	profile.ApprovedBy = &adminID
	return nil
}

// Reject transitions a pending profile to rejected and stamps the acting
// admin.
func Reject(profile *domain.Profile, adminID string, now time.Time) error {
	if !CanTransition(profile.Status, domain.StatusRejected) {
		return &TransitionError{From: profile.Status, To: domain.StatusRejected}
	}
	profile.Status = domain.StatusRejected
	profile.RejectedAt = &now
	profile.RejectedBy = &adminID
	return nil
}
