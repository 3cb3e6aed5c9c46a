package domain

import "time"

const (
	MinPower = 0
	MaxPower = 1000
)

type Participant struct {
	Name  string `json:"name"`
	Power int    `json:"power"`
}

// Battle is a resolved pairing. It is complete from the moment it exists.
type Battle struct {
	ID           string      `json:"id"`
	Participant1 Participant `json:"participant1"`
	Participant2 Participant `json:"participant2"`
	Winner       string      `json:"winner"`
	WinnerPower  int         `json:"winner_power"`
	CreatedAt    time.Time   `json:"created_at"`
	Completed    bool        `json:"completed"`
}

func (p Participant) PowerInRange() bool {
	return p.Power >= MinPower && p.Power <= MaxPower
}
