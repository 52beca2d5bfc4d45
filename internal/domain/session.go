package domain

// Session is what the external auth collaborator resolves a request to.
// Authentication itself (cookies, token issuance) lives outside this service.
type Session struct {
	UserID     uint64
	Username   string
	IsAdmin    bool
	IsEmployee bool
}
