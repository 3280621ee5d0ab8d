package core

import (
	"github.com/jashanpratapsingh/story-shelf-manager/internal/model"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/utils"
)

// OwnerCredential is the fixed store-owner login. The password is a
// bcrypt hash, prepared once at startup from configuration.
type OwnerCredential struct {
	Username     string
	PasswordHash string
}

// Authenticate validates a username/password pair against the owner
// credential and the customer collection and returns the resulting
// session. The owner credential is checked first; otherwise customers
// are scanned for a case-sensitive username match whose password hash
// verifies. All failures collapse into ErrInvalidCredentials.
//
// No side effects; O(number of customers).
func Authenticate(owner OwnerCredential, customers []model.Customer, username, password string) (model.Session, error) {
	if username == owner.Username && utils.VerifyPassword(owner.PasswordHash, password) {
		return model.Session{Username: username, Role: model.RoleOwner}, nil
	}
	for _, c := range customers {
		if c.Username == username && utils.VerifyPassword(c.PasswordHash, password) {
			return model.Session{Username: username, Role: model.RoleCustomer}, nil
		}
	}
	return model.Session{}, ErrInvalidCredentials
}
