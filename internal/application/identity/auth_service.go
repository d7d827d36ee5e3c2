package identity

import (
	"context"
	"errors"

	"github.com/acme/dashboard/internal/domain/identity"
	"github.com/acme/dashboard/internal/domain/shared"
	"go.uber.org/zap"
)

// User-facing sign-in messages. Only the invalid-credentials category gets a
// specific message; every other failure in the family collapses to the
// generic one.
const (
	MessageInvalidCredentials = "Invalid credentials."
	MessageSignInFailed       = "Something went wrong."
)

// Credentials carries the raw values from the login form
type Credentials struct {
	Email    string
	Password string
}

// CredentialVerifier checks credentials against the user store. Failures it
// classifies are reported as *SignInError; anything else is a defect in the
// verifier, not a credential problem.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (*identity.User, error)
}

// Authenticator maps credential-provider failures onto the two user-facing
// messages the login form renders.
type Authenticator struct {
	verifier CredentialVerifier
	logger   *zap.Logger
}

// NewAuthenticator creates a new Authenticator
func NewAuthenticator(verifier CredentialVerifier, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		verifier: verifier,
		logger:   logger,
	}
}

// Authenticate forwards the credentials to the verifier. On success it
// returns the user and an empty message. Failures inside the sign-in error
// family become a message with a nil error; anything outside the family is
// returned as-is for a higher-level handler.
func (a *Authenticator) Authenticate(ctx context.Context, creds Credentials) (*identity.User, string, error) {
	user, err := a.verifier.Verify(ctx, creds.Email, creds.Password)
	if err == nil {
		return user, "", nil
	}

	var signInErr *SignInError
	if !errors.As(err, &signInErr) {
		return nil, "", err
	}

	switch signInErr.Kind {
	case SignInKindCredentials:
		a.logger.Warn("Sign-in rejected", zap.String("email", creds.Email))
		return nil, MessageInvalidCredentials, nil
	default:
		a.logger.Error("Sign-in failed", zap.String("kind", string(signInErr.Kind)), zap.Error(signInErr))
		return nil, MessageSignInFailed, nil
	}
}

// UserVerifier verifies credentials against the user repository with bcrypt.
type UserVerifier struct {
	users identity.UserRepository
}

// NewUserVerifier creates a repository-backed CredentialVerifier
func NewUserVerifier(users identity.UserRepository) *UserVerifier {
	return &UserVerifier{users: users}
}

// Verify looks up the user by email and compares the password hash.
// An unknown email and a wrong password are indistinguishable to the caller.
func (v *UserVerifier) Verify(ctx context.Context, email, password string) (*identity.User, error) {
	user, err := v.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, &SignInError{Kind: SignInKindCredentials, Err: err}
		}
		return nil, &SignInError{Kind: SignInKindProvider, Err: err}
	}
	if !user.VerifyPassword(password) {
		return nil, &SignInError{Kind: SignInKindCredentials}
	}
	return user, nil
}

// Ensure UserVerifier implements CredentialVerifier
var _ CredentialVerifier = (*UserVerifier)(nil)
