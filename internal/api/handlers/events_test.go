package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/dom/battle-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsHandler_BattleResolved(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := testutil.NewWSClient(t, ts)

	id := testutil.NewBattleRequestBuilder().
		WithParticipant1("Strong Warrior", 100).
		WithParticipant2("Weak Warrior", 0).
		StartBattle(t, ts)

	battle := client.ExpectBattleResolved(2 * time.Second)
	assert.Equal(t, id, battle.ID)
	assert.Equal(t, "Strong Warrior", battle.Winner)
	assert.Equal(t, 100, battle.WinnerPower)
	assert.True(t, battle.Completed)
}

func TestEventsHandler_MultipleSubscribers(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c1 := testutil.NewWSClient(t, ts)
	c2 := testutil.NewWSClient(t, ts)

	id := testutil.NewBattleRequestBuilder().StartBattle(t, ts)

	assert.Equal(t, id, c1.ExpectBattleResolved(2*time.Second).ID)
	assert.Equal(t, id, c2.ExpectBattleResolved(2*time.Second).ID)
}

func TestEventsHandler_RejectedBattleNotPublished(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := testutil.NewWSClient(t, ts)

	resp := testutil.NewBattleRequestBuilder().WithParticipant1("Bad", -100).PostBattle(t, ts)
	testutil.AssertValidationErrors(t, resp)

	client.ExpectNoMessage(200 * time.Millisecond)
}

func TestEventsHandler_RequiresUpgrade(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.BattleURL("/ws"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
}
