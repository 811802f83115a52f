package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonContentType = "application/json; charset=utf-8"

// HTTPTestSuite wraps a gin engine in test mode
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest returns an empty test router
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// SetupAuthenticatedHTTPTest attributes every request to userID, as the bearer
// token middleware does after a successful check
func SetupAuthenticatedHTTPTest(userID uuid.UUID) *HTTPTestSuite {
	s := SetupHTTPTest()
	s.Router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	return s
}

// MakeRequest JSON-encodes body (when non-nil) and serves the request
func (s *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return s.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders is MakeRequest with extra request headers
func (s *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return s.serve(req)
}

// MakeRawRequest sends body verbatim, for malformed payload cases
func (s *HTTPTestSuite) MakeRawRequest(method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return s.serve(req)
}

func (s *HTTPTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	s.Router.ServeHTTP(recorder, req)
	return recorder
}

// AssertJSONResponse checks the status and content type, then decodes into target
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, jsonContentType, recorder.Header().Get("Content-Type"))

	if target != nil {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
	}
}

// AssertErrorResponse checks the status and that the error field contains expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	if expectedMessage != "" {
		assert.Contains(t, body["error"], expectedMessage)
	}
}

// MockHTTPRequest describes a request of a table-driven handler test
type MockHTTPRequest struct {
	Method  string
	URL     string
	Body    interface{}
	Headers map[string]string
}

// MockHTTPResponse is the expected status and, optionally, the JSON body
type MockHTTPResponse struct {
	Status int
	Body   interface{}
}

// HTTPTestCase is one row of a table-driven handler test
type HTTPTestCase struct {
	Name             string
	Request          MockHTTPRequest
	ExpectedResponse MockHTTPResponse
	Setup            func()
	Teardown         func()
}

// RunHTTPTestCases runs each case as a subtest
func (s *HTTPTestSuite) RunHTTPTestCases(t *testing.T, testCases []HTTPTestCase) {
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if tc.Setup != nil {
				tc.Setup()
			}
			if tc.Teardown != nil {
				defer tc.Teardown()
			}

			recorder := s.MakeRequestWithHeaders(tc.Request.Method, tc.Request.URL, tc.Request.Body, tc.Request.Headers)
			assert.Equal(t, tc.ExpectedResponse.Status, recorder.Code)

			if tc.ExpectedResponse.Body != nil {
				expected, _ := json.Marshal(tc.ExpectedResponse.Body)
				assert.JSONEq(t, string(expected), recorder.Body.String())
			}
		})
	}
}
