package model

// Roles carried in the session and in JWT role claims.
const (
	RoleOwner    = "OWNER"
	RoleCustomer = "CUSTOMER"
)

// Session is the authenticated principal. At most one exists per
// request; it is produced by the authentication check and encoded
// into the access token.
//
// Fields:
//  Username – login name of the principal.
//  Role     – RoleOwner or RoleCustomer.
type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
