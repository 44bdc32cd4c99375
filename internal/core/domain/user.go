package domain

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Role distinguishes admin users from regular employees.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// User represents an employee account in the domain.
type User struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	// Credential is the stored password material, never serialized.
	Credential Credential `json:"-"`
}

// CredentialKind tags how a stored password credential must be checked.
type CredentialKind int

const (
	// CredentialHashed is a bcrypt hash.
	CredentialHashed CredentialKind = iota
	// CredentialPlaintext is a legacy unhashed password kept for
	// migration compatibility. Verified by direct equality.
	CredentialPlaintext
)

// Credential is a stored password credential. The kind is decided once,
// when the row is loaded, instead of re-sniffing the prefix on every check.
type Credential struct {
	Kind  CredentialKind
	Value string
}

// ParseCredential classifies a stored credential string. Bcrypt hashes
// carry the "$2" version marker; anything else is legacy plaintext.
func ParseCredential(stored string) Credential {
	if strings.HasPrefix(stored, "$2") {
		return Credential{Kind: CredentialHashed, Value: stored}
	}
	return Credential{Kind: CredentialPlaintext, Value: stored}
}

// Verify reports whether the given password matches this credential.
func (c Credential) Verify(password string) bool {
	switch c.Kind {
	case CredentialHashed:
		return bcrypt.CompareHashAndPassword([]byte(c.Value), []byte(password)) == nil
	default:
		return subtle.ConstantTimeCompare([]byte(c.Value), []byte(password)) == 1
	}
}
