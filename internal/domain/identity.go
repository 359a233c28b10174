package domain

// Identity is the externally authenticated principal as the auth boundary
// reports it. It carries no role or status; those live on the Profile.
type Identity struct {
	ID          string
	Email       string
	DisplayName string
	PhotoURL    string
}
