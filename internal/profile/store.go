package profile

import "context"

type Profile struct {
	UserID   int64  `json:"userId"`
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// Store is read-only: profiles are seeded at startup and never change.
type Store interface {
	Get(ctx context.Context, userID int64) (Profile, bool, error)
	Ping(ctx context.Context) error
}

func SeedProfiles() []Profile {
	return []Profile{
		{
			UserID:   1,
			FullName: "Alice Johnson",
			Address:  "123 Maple Street, New York",
			Phone:    "+1 234 567 890",
			Email:    "alice@example.com",
		},
		{
			UserID:   2,
			FullName: "Bob Smith",
			Address:  "456 Oak Avenue, Los Angeles",
			Phone:    "+1 987 654 321",
			Email:    "bob@example.com",
		},
	}
}
