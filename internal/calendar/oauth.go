package calendar

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// EventsScope grants write access to calendar events
const EventsScope = "https://www.googleapis.com/auth/calendar.events"

// OAuthConfig holds the provider client registration
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
}

// OAuthClient runs the consent, code exchange and refresh token flows
type OAuthClient struct {
	config     *oauth2.Config
	httpClient *http.Client
}

// NewOAuthClient builds an OAuth client; credentials are sent as form parameters.
// A nil httpClient falls back to http.DefaultClient inside x/oauth2.
func NewOAuthClient(cfg OAuthConfig, httpClient *http.Client) *OAuthClient {
	return &OAuthClient{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{EventsScope},
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: httpClient,
	}
}

func (o *OAuthClient) withClient(ctx context.Context) context.Context {
	if o.httpClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, o.httpClient)
}

// AuthCodeURL returns the consent page URL; offline access with forced consent
// so the provider always hands back a refresh token
func (o *OAuthClient) AuthCodeURL(state string) string {
	return o.config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades an authorization code for tokens
func (o *OAuthClient) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := o.config.Exchange(o.withClient(ctx), code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}
	return token, nil
}

// Refresh exchanges a refresh token for a new access token
func (o *OAuthClient) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", fmt.Errorf("refresh token is empty")
	}
	source := o.config.TokenSource(o.withClient(ctx), &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		return "", fmt.Errorf("token refresh failed: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}
	return token.AccessToken, nil
}
