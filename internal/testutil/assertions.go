package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/dom/battle-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v and verifies success
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse verifies a {"detail": "..."} error with expected status and message
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	var body struct {
		Detail string `json:"detail"`
	}
	AssertJSONResponse(t, resp, &body)
	assert.Equal(t, expectedMessage, body.Detail, "error message mismatch")
}

// AssertValidationErrors verifies a 422 response and returns its field errors keyed by field path
func AssertValidationErrors(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, "unexpected status code")

	var body struct {
		Detail []domain.FieldError `json:"detail"`
	}
	AssertJSONResponse(t, resp, &body)
	require.NotEmpty(t, body.Detail, "validation response should list failing fields")

	fields := make(map[string]string, len(body.Detail))
	for _, fe := range body.Detail {
		fields[fe.Field] = fe.Message
	}
	return fields
}

// AssertWinnerIsParticipant verifies the winner matches one of the two participants
func AssertWinnerIsParticipant(t *testing.T, battle *domain.Battle) {
	t.Helper()

	switch battle.Winner {
	case battle.Participant1.Name:
		assert.Equal(t, battle.Participant1.Power, battle.WinnerPower)
	case battle.Participant2.Name:
		assert.Equal(t, battle.Participant2.Power, battle.WinnerPower)
	default:
		t.Errorf("winner %q is neither %q nor %q", battle.Winner, battle.Participant1.Name, battle.Participant2.Name)
	}
}
