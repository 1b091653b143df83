package services

import (
	"context"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
)

// TokenSvcFacade issues application JWTs.
type TokenSvcFacade interface {
	// GenerateToken issues a signed JWT whose subject is the user's username.
	GenerateToken(user *domain.User) (string, error)
}

// GoogleOAuthSvcFacade exchanges Google authorization codes for verified
// user identities.
type GoogleOAuthSvcFacade interface {
	// ExchangeCode trades an authorization code for the Google account's
	// email and names.
	ExchangeCode(ctx context.Context, code string) (email, firstName, lastName string, err error)
}

// DigestSvcFacade sends the scheduled approval digest.
type DigestSvcFacade interface {
	// SendDailyDigest groups pending quotations by their current actionable
	// approver and emails each approver one summary. Returns the number of
	// digests sent.
	SendDailyDigest(ctx context.Context) (int, error)
}
