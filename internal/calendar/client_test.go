package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

const testBaseURL = "https://calendar.test/calendar/v3"

// ClientTestSuite tests the calendar Client with httpmock
type ClientTestSuite struct {
	suite.Suite
	httpClient *http.Client
	client     *Client
}

func (s *ClientTestSuite) SetupTest() {
	s.httpClient = &http.Client{}
	httpmock.ActivateNonDefault(s.httpClient)
	s.client = NewClient(testBaseURL+"/", s.httpClient)
}

func (s *ClientTestSuite) TearDownTest() {
	httpmock.DeactivateAndReset()
}

func sampleEvent() *Event {
	return &Event{
		Summary:     "📸 Story - Acme",
		Description: "Tipo: 📸 Story\nParceiro: Acme\n\nDetalhes: 2 stories",
		Start:       EventDate{Date: "2025-06-01"},
		End:         EventDate{Date: "2025-06-01"},
		ColorID:     DefaultColorID,
	}
}

func (s *ClientTestSuite) TestInsertEventSuccess() {
	var captured map[string]interface{}
	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/calendars/primary/events",
		func(req *http.Request) (*http.Response, error) {
			s.Equal("Bearer ya29.token", req.Header.Get("Authorization"))
			s.Equal("application/json", req.Header.Get("Content-Type"))
			body, _ := io.ReadAll(req.Body)
			s.Require().NoError(json.Unmarshal(body, &captured))
			return httpmock.NewStringResponse(http.StatusOK, `{"id":"evt1"}`), nil
		})

	err := s.client.InsertEvent(context.Background(), "ya29.token", sampleEvent())

	s.Require().NoError(err)
	s.Equal(1, httpmock.GetTotalCallCount())
	s.Equal("📸 Story - Acme", captured["summary"])
	s.Equal(map[string]interface{}{"date": "2025-06-01"}, captured["start"])
	s.Equal(map[string]interface{}{"date": "2025-06-01"}, captured["end"])
	s.Equal("3", captured["colorId"])
}

func (s *ClientTestSuite) TestInsertEventUnauthorized() {
	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/calendars/primary/events",
		httpmock.NewStringResponder(http.StatusUnauthorized, `{"error":{"code":401}}`))

	err := s.client.InsertEvent(context.Background(), "expired", sampleEvent())

	var apiErr *APIError
	s.Require().True(errors.As(err, &apiErr))
	s.True(apiErr.IsUnauthorized())
	s.Contains(apiErr.Body, "401")
}

func (s *ClientTestSuite) TestInsertEventServerError() {
	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/calendars/primary/events",
		httpmock.NewStringResponder(http.StatusInternalServerError, "boom"))

	err := s.client.InsertEvent(context.Background(), "token", sampleEvent())

	var apiErr *APIError
	s.Require().True(errors.As(err, &apiErr))
	s.False(apiErr.IsUnauthorized())
	s.Equal(http.StatusInternalServerError, apiErr.StatusCode)
}

func (s *ClientTestSuite) TestInsertEventTransportError() {
	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/calendars/primary/events",
		httpmock.NewErrorResponder(errors.New("dial tcp: connection refused")))

	err := s.client.InsertEvent(context.Background(), "token", sampleEvent())

	s.Error(err)
	var apiErr *APIError
	s.False(errors.As(err, &apiErr))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
