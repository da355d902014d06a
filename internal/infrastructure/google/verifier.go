// Package google verifies Google ID tokens against the tokeninfo endpoint.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/resumecraft/resume-builder-api/internal/core/domain"
)

const tokeninfoEndpoint = "https://oauth2.googleapis.com/tokeninfo"

// Verifier validates an ID token's signature, issuer, and expiry by handing
// it to Google's tokeninfo endpoint, then checks the audience locally.
// Every failure mode collapses into domain.ErrInvalidCredential; the real
// cause is only logged.
type Verifier struct {
	clientID   string
	endpoint   string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewVerifier(clientID string, logger zerolog.Logger) *Verifier {
	return &Verifier{
		clientID:   clientID,
		endpoint:   tokeninfoEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// tokenClaims is the subset of the tokeninfo response the backend cares about.
type tokenClaims struct {
	Aud        string `json:"aud"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

func (v *Verifier) Verify(ctx context.Context, credential string) (*domain.Profile, error) {
	claims, err := v.fetchClaims(ctx, credential)
	if err != nil {
		v.logger.Warn().Err(err).Msg("credential verification failed")
		return nil, domain.ErrInvalidCredential
	}

	if claims.Aud != v.clientID {
		v.logger.Warn().Str("aud", claims.Aud).Msg("credential audience mismatch")
		return nil, domain.ErrInvalidCredential
	}
	if claims.Email == "" {
		v.logger.Warn().Msg("credential carries no email claim")
		return nil, domain.ErrInvalidCredential
	}

	return &domain.Profile{
		Email:      claims.Email,
		GivenName:  claims.GivenName,
		FamilyName: claims.FamilyName,
		Picture:    claims.Picture,
	}, nil
}

func (v *Verifier) fetchClaims(ctx context.Context, credential string) (*tokenClaims, error) {
	reqURL := v.endpoint + "?id_token=" + url.QueryEscape(credential)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// tokeninfo answers non-200 for malformed, expired, or badly signed
	// tokens alike.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tokeninfo status %d", resp.StatusCode)
	}

	var claims tokenClaims
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, err
	}
	return &claims, nil
}
