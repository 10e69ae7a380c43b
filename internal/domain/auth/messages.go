package auth

import (
	jmespath "github.com/jmespath-community/go-jmespath"
)

// Identity provider error bodies look like {"errors":[{"longMessage":"...","message":"..."}]}.
const (
	providerErrorShapeExpr   = "type(errors) == 'array' && length(errors[?longMessage != `null` || message != `null`]) == length(errors)"
	providerErrorMessageExpr = "errors[0].longMessage || errors[0].message"
)

// ProviderErrorMessage extracts the display message from a decoded identity provider
// error payload. The long message wins over the short one. Payloads that do not have
// the provider shape yield fallback.
func ProviderErrorMessage(payload any, fallback string) string {
	if payload == nil {
		return fallback
	}

	shaped, err := jmespath.Search(providerErrorShapeExpr, payload)
	if err != nil {
		return fallback
	}
	if ok, _ := shaped.(bool); !ok {
		return fallback
	}

	msg, err := jmespath.Search(providerErrorMessageExpr, payload)
	if err != nil {
		return fallback
	}
	if s, ok := msg.(string); ok && s != "" {
		return s
	}
	return fallback
}
