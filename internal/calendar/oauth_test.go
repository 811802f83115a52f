package calendar

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

const testTokenURL = "https://oauth.test/token"

// OAuthClientTestSuite tests the OAuth flows with httpmock
type OAuthClientTestSuite struct {
	suite.Suite
	httpClient *http.Client
	oauth      *OAuthClient
}

func (s *OAuthClientTestSuite) SetupTest() {
	s.httpClient = &http.Client{}
	httpmock.ActivateNonDefault(s.httpClient)
	s.oauth = NewOAuthClient(OAuthConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:7008/api/v1/calendar/google/callback",
		AuthURL:      "https://oauth.test/auth",
		TokenURL:     testTokenURL,
	}, s.httpClient)
}

func (s *OAuthClientTestSuite) TearDownTest() {
	httpmock.DeactivateAndReset()
}

func (s *OAuthClientTestSuite) TestRefreshSendsFormEncodedCredentials() {
	var form url.Values
	httpmock.RegisterResponder(http.MethodPost, testTokenURL,
		func(req *http.Request) (*http.Response, error) {
			s.Require().NoError(req.ParseForm())
			form = req.PostForm
			resp := httpmock.NewStringResponse(http.StatusOK, `{"access_token":"ya29.new","token_type":"Bearer","expires_in":3599}`)
			resp.Header.Set("Content-Type", "application/json")
			return resp, nil
		})

	token, err := s.oauth.Refresh(context.Background(), "1//refresh")

	s.Require().NoError(err)
	s.Equal("ya29.new", token)
	s.Equal("refresh_token", form.Get("grant_type"))
	s.Equal("1//refresh", form.Get("refresh_token"))
	s.Equal("client-id", form.Get("client_id"))
	s.Equal("client-secret", form.Get("client_secret"))
}

func (s *OAuthClientTestSuite) TestRefreshRejected() {
	resp := httpmock.NewStringResponse(http.StatusBadRequest, `{"error":"invalid_grant"}`)
	resp.Header.Set("Content-Type", "application/json")
	httpmock.RegisterResponder(http.MethodPost, testTokenURL, httpmock.ResponderFromResponse(resp))

	token, err := s.oauth.Refresh(context.Background(), "1//revoked")

	s.Error(err)
	s.Empty(token)
}

func (s *OAuthClientTestSuite) TestRefreshWithoutToken() {
	_, err := s.oauth.Refresh(context.Background(), "")

	s.Error(err)
	s.Equal(0, httpmock.GetTotalCallCount())
}

func (s *OAuthClientTestSuite) TestAuthCodeURL() {
	raw := s.oauth.AuthCodeURL("signed-state")

	u, err := url.Parse(raw)
	s.Require().NoError(err)
	q := u.Query()
	s.Equal("signed-state", q.Get("state"))
	s.Equal("offline", q.Get("access_type"))
	s.Equal("consent", q.Get("prompt"))
	s.Equal(EventsScope, q.Get("scope"))
	s.Equal("client-id", q.Get("client_id"))
}

func (s *OAuthClientTestSuite) TestExchange() {
	httpmock.RegisterResponder(http.MethodPost, testTokenURL,
		func(req *http.Request) (*http.Response, error) {
			s.Require().NoError(req.ParseForm())
			s.Equal("authorization_code", req.PostForm.Get("grant_type"))
			s.Equal("auth-code", req.PostForm.Get("code"))
			resp := httpmock.NewStringResponse(http.StatusOK, `{"access_token":"ya29.a","refresh_token":"1//r","token_type":"Bearer","expires_in":3599}`)
			resp.Header.Set("Content-Type", "application/json")
			return resp, nil
		})

	token, err := s.oauth.Exchange(context.Background(), "auth-code")

	s.Require().NoError(err)
	s.Equal("ya29.a", token.AccessToken)
	s.Equal("1//r", token.RefreshToken)
}

func TestOAuthClientTestSuite(t *testing.T) {
	suite.Run(t, new(OAuthClientTestSuite))
}
