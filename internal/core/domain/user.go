package domain

import (
	"strings"
	"time"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// ResolveRole maps the role requested at registration to a known role.
// Anything other than "Admin" falls back to User.
func ResolveRole(requested string) string {
	if strings.EqualFold(strings.TrimSpace(requested), RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

// Identity is the credential record owned by the authentication subsystem.
type Identity struct {
	ID            string    `bson:"_id,omitempty"`
	Username      string    `bson:"username"`
	Email         string    `bson:"email"`
	PasswordHash  string    `bson:"password_hash"`
	PhoneNumber   string    `bson:"phone_number"`
	SecurityStamp string    `bson:"security_stamp"`
	Roles         []string  `bson:"roles"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

// HasRole reports whether the identity has been assigned role.
func (i *Identity) HasRole(role string) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Role is an entry of the role registry.
type Role struct {
	Name      string    `bson:"_id"`
	CreatedAt time.Time `bson:"created_at"`
}

// User is the application-level user record. It mirrors the identity at
// registration time and is not kept in sync afterwards.
type User struct {
	ID           int64     `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PhoneNumber  string    `json:"phoneNumber" bson:"phone_number"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}
