package main

import (
	"testing"

	"github.com/dom/battle-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParticipant(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Participant
		wantErr bool
	}{
		{name: "simple", input: "Knight:300", want: Participant{Name: "Knight", Power: 300}},
		{name: "name with colon", input: "Sir:Lance:10", want: Participant{Name: "Sir:Lance", Power: 10}},
		{name: "name with spaces", input: "Strong Warrior:100", want: Participant{Name: "Strong Warrior", Power: 100}},
		{name: "missing power", input: "Knight", wantErr: true},
		{name: "missing name", input: ":10", wantErr: true},
		{name: "non numeric power", input: "Knight:lots", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseParticipant(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAPIClient(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := NewAPIClient(ts.BaseURL())

	id, err := client.StartBattle(
		Participant{Name: "Strong Warrior", Power: 100},
		Participant{Name: "Weak Warrior", Power: 0},
	)
	require.NoError(t, err)

	battle, err := client.GetBattle(id)
	require.NoError(t, err)
	assert.Equal(t, "Strong Warrior", battle.Winner)
	assert.True(t, battle.Completed)

	info, err := client.Info()
	require.NoError(t, err)
	assert.Equal(t, 1, info.TotalBattles)

	_, err = client.StartBattle(Participant{Name: "Bad", Power: -100}, Participant{Name: "Good", Power: 1})
	assert.ErrorContains(t, err, "422")

	_, err = client.GetBattle("nonexistent-id")
	assert.ErrorContains(t, err, "404")
}
