// Package geoguess defines the game records (maps, players, rounds) and
// the pure functions derived from them. Nothing here touches storage.
package geoguess

import "time"

type Map struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Round is one played guess on a map. Rounds are never modified after
// they are created.
type Round struct {
	ID         string    `json:"id"`
	MapID      string    `json:"mapId"`
	Answer     string    `json:"answer"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	StreetView string    `json:"streetView"`
	Attempt    int       `json:"attempt"`
	Round      int       `json:"round"`
	Players    []string  `json:"players"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Score      int       `json:"score"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Duration is the wall time between StartTime and EndTime. It may be
// negative if the client sent the times reversed.
func (r Round) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}
