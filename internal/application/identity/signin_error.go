package identity

// SignInErrorKind discriminates the categories of sign-in failure the
// credential provider can report.
type SignInErrorKind string

const (
	// SignInKindCredentials means the supplied credentials were rejected.
	SignInKindCredentials SignInErrorKind = "CredentialsSignin"

	// SignInKindProvider covers provider-side faults during verification,
	// such as a failed user lookup.
	SignInKindProvider SignInErrorKind = "ProviderError"
)

// SignInError is the typed error family raised by credential verification.
// Errors outside this family are not sign-in failures and must propagate.
type SignInError struct {
	Kind SignInErrorKind
	Err  error
}

// Error implements the error interface
func (e *SignInError) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Err.Error()
	}
	return string(e.Kind)
}

// Unwrap returns the underlying cause, if any
func (e *SignInError) Unwrap() error {
	return e.Err
}
