package services

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/platform/config"
	"github.com/jakkitOptx/quotation-backend-neon/internal/utils"
)

// tokenService implements the TokenSvcFacade for issuing JWTs.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateToken issues a signed JWT whose subject is the user's username, the
// same identity string hierarchies and logs use.
func (s *tokenService) GenerateToken(user *domain.User) (string, error) {
	return utils.GenerateJWT(user.Username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}

// googleOAuthService implements the GoogleOAuthSvcFacade.
type googleOAuthService struct {
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

// ExchangeCode trades an authorization code for the Google account's email and
// names via the userinfo endpoint.
func (s *googleOAuthService) ExchangeCode(ctx context.Context, code string) (string, string, string, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(s.oauth2Config.TokenSource(ctx, token)))
	if err != nil {
		return "", "", "", fmt.Errorf("failed to build userinfo client: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return "", "", "", fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	if info.Email == "" {
		return "", "", "", fmt.Errorf("userinfo response contained no email")
	}
	return info.Email, info.GivenName, info.FamilyName, nil
}
