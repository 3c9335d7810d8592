// Package accounts persists user identities, credentials and business
// profiles behind a capability interface so the backing store can be
// swapped without touching callers.
package accounts

import (
	"errors"
	"time"
)

// ProfileKeys lists the onboarding question keys in their canonical
// order. A completed profile has exactly these keys populated.
var ProfileKeys = []string{
	"industria",
	"estado_industria",
	"tipo_negocio",
	"rol",
	"objetivo_principal",
	"dolor_principal",
}

// Profile maps onboarding question keys to the selected answer.
type Profile map[string]string

// Clone returns an independent copy so callers cannot mutate stored state.
func (p Profile) Clone() Profile {
	if p == nil {
		return Profile{}
	}
	out := make(Profile, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Account is one stored user record. Email is the unique key.
type Account struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
}

var (
	// ErrAlreadyExists is returned by Create for a taken identity.
	ErrAlreadyExists = errors.New("la cuenta ya existe")
	// ErrNotFound is returned when the identity is absent.
	ErrNotFound = errors.New("cuenta no encontrada")
	// ErrInvalidCredentials covers both unknown identity and wrong
	// password. Callers must not distinguish the two cases.
	ErrInvalidCredentials = errors.New("correo o contraseña incorrectos")
)

// Store is the account persistence capability.
type Store interface {
	// Create inserts a new account with a hashed password and the given
	// (possibly empty) profile. Fails with ErrAlreadyExists without
	// modifying the store.
	Create(email, password string, profile Profile) error

	// Authenticate returns the stored profile when the password matches,
	// ErrInvalidCredentials otherwise.
	Authenticate(email, password string) (Profile, error)

	// Profile returns the stored profile, ErrNotFound when absent.
	Profile(email string) (Profile, error)

	// SetProfile overwrites the profile, ErrNotFound when absent.
	SetProfile(email string, profile Profile) error
}
