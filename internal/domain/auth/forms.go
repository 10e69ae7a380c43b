package auth

import "strings"

// Sign-in attempt statuses reported by the identity provider.
const (
	StatusComplete          = "complete"
	StatusNeedsSecondFactor = "needs_second_factor"
	StatusNeedsNewPassword  = "needs_new_password"
)

// DefaultSignInErrorMessage is used when the provider error carries nothing usable.
const DefaultSignInErrorMessage = "Unable to sign in. Please check your credentials and try again."

// ValidateSignIn returns the first validation message for the sign-in form, or "" when valid.
func ValidateSignIn(email, password string) string {
	return firstMissing(
		requiredField{email, "Email is required."},
		requiredField{password, "Password is required."},
	)
}

// SignInStatusMessage maps a non-complete sign-in status to a user message.
// It returns "" for StatusComplete.
func SignInStatusMessage(status string) string {
	switch status {
	case StatusComplete:
		return ""
	case StatusNeedsSecondFactor:
		return "Two-factor authentication is required to continue. Please complete your second factor sign-in step."
	case StatusNeedsNewPassword:
		return "Your account requires a new password before you can sign in. Please reset your password and try again."
	default:
		return "Sign-in cannot be completed right now. Please try again or use another sign-in method."
	}
}

type requiredField struct {
	value   string
	message string
}

func firstMissing(fields ...requiredField) string {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return f.message
		}
	}
	return ""
}
