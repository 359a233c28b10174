package dto

// RejectRequest carries the optional rejection reason.
type RejectRequest struct {
	Reason string `json:"reason"`
}
