package domain

// User is a brokerage client. ContractorID links a client to the referral
// partner that brought them in, nil when the client signed up organically.
type User struct {
	ID           uint64
	Username     string
	Email        string
	ContractorID *uint64
}

type UserRepository interface {
	// FindReferred returns only users with a recorded referring contractor.
	FindReferred() ([]*User, error)
}
