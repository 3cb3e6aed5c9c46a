package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// BattleRequestBuilder creates POST /battle/start bodies with a builder pattern.
// Fields are kept as loose values so tests can send invalid shapes.
type BattleRequestBuilder struct {
	participant1 map[string]interface{}
	participant2 map[string]interface{}
}

// NewBattleRequestBuilder creates a builder with two valid participants
func NewBattleRequestBuilder() *BattleRequestBuilder {
	return &BattleRequestBuilder{
		participant1: map[string]interface{}{"name": "Warrior1", "power": 50},
		participant2: map[string]interface{}{"name": "Warrior2", "power": 30},
	}
}

// WithParticipant1 sets the first participant
func (b *BattleRequestBuilder) WithParticipant1(name string, power int) *BattleRequestBuilder {
	b.participant1 = map[string]interface{}{"name": name, "power": power}
	return b
}

// WithParticipant2 sets the second participant
func (b *BattleRequestBuilder) WithParticipant2(name string, power int) *BattleRequestBuilder {
	b.participant2 = map[string]interface{}{"name": name, "power": power}
	return b
}

// WithField overrides a raw field of a participant (1 or 2)
func (b *BattleRequestBuilder) WithField(participant int, field string, value interface{}) *BattleRequestBuilder {
	b.target(participant)[field] = value
	return b
}

// WithoutField removes a field of a participant (1 or 2)
func (b *BattleRequestBuilder) WithoutField(participant int, field string) *BattleRequestBuilder {
	delete(b.target(participant), field)
	return b
}

// WithoutParticipant removes a participant entirely
func (b *BattleRequestBuilder) WithoutParticipant(participant int) *BattleRequestBuilder {
	if participant == 1 {
		b.participant1 = nil
	} else {
		b.participant2 = nil
	}
	return b
}

func (b *BattleRequestBuilder) target(participant int) map[string]interface{} {
	if participant == 1 {
		return b.participant1
	}
	return b.participant2
}

// Body returns the JSON request body
func (b *BattleRequestBuilder) Body(t *testing.T) []byte {
	t.Helper()

	body := map[string]interface{}{}
	if b.participant1 != nil {
		body["participant1"] = b.participant1
	}
	if b.participant2 != nil {
		body["participant2"] = b.participant2
	}

	data, err := json.Marshal(body)
	require.NoError(t, err)
	return data
}

// PostBattle sends the request to the test server
func (b *BattleRequestBuilder) PostBattle(t *testing.T, ts *TestServer) *http.Response {
	t.Helper()

	resp, err := http.Post(ts.BattleURL("/start"), "application/json", bytes.NewReader(b.Body(t)))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// StartBattle creates a battle and returns its id
func (b *BattleRequestBuilder) StartBattle(t *testing.T, ts *TestServer) string {
	t.Helper()

	resp := b.PostBattle(t, ts)
	require.Equal(t, http.StatusOK, resp.StatusCode, "failed to start battle")

	var result struct {
		BattleID string `json:"battle_id"`
	}
	AssertJSONResponse(t, resp, &result)
	require.NotEmpty(t, result.BattleID)
	return result.BattleID
}
