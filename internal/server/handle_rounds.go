package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/geoguess/tracker/internal/geoguess"
	"github.com/geoguess/tracker/internal/store"
)

type RoundRequest struct {
	MapID      string     `json:"mapId" validate:"required"`
	Answer     string     `json:"answer" validate:"required"`
	Latitude   *float64   `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude  *float64   `json:"longitude" validate:"required,gte=-180,lte=180"`
	StreetView string     `json:"streetView" validate:"required,http_url"`
	Attempt    *int       `json:"attempt" validate:"required"`
	Round      *int       `json:"round" validate:"required"`
	Players    []string   `json:"players" validate:"required,min=1"`
	StartTime  *time.Time `json:"startTime" validate:"required"`
	EndTime    *time.Time `json:"endTime" validate:"required"`
	Score      *int       `json:"score" validate:"required"`
}

func (req *RoundRequest) normalize() {
	req.MapID = strings.TrimSpace(req.MapID)
	req.Answer = strings.TrimSpace(req.Answer)
	req.StreetView = strings.TrimSpace(req.StreetView)
}

func handleListRounds(st Store) apiHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		rounds, err := st.ListRounds(r.Context())
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, rounds)
		return nil
	}
}

// handleGetRound answers 200 with a null body when the round does not
// exist, the same as handleGetMap.
func handleGetRound(st Store) apiHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return badRequest("invalid round id format").with("id", chi.URLParam(r, "id"))
		}

		round, err := st.GetRound(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusOK, nil)
			return nil
		}
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, round)
		return nil
	}
}

// handleCreateRound checks the format of every referenced id first and
// then that the map and each player exist, stopping at the first
// failure.
func handleCreateRound(st Store) apiHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		var req RoundRequest
		if err := decodeBody(r, &req); err != nil {
			return err
		}

		ids := append([]string{req.MapID}, req.Players...)
		if err := geoguess.NormalizeIDs(ids); err != nil {
			return err
		}
		req.MapID, req.Players = ids[0], ids[1:]

		if _, err := st.GetMap(r.Context(), req.MapID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return badRequest("map not found").with("id", req.MapID)
			}
			return err
		}
		for _, pid := range req.Players {
			if _, err := st.GetPlayer(r.Context(), pid); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return badRequest("player not found").with("id", pid)
				}
				return err
			}
		}

		round, err := st.InsertRound(r.Context(), geoguess.Round{
			MapID:      req.MapID,
			Answer:     req.Answer,
			Latitude:   *req.Latitude,
			Longitude:  *req.Longitude,
			StreetView: req.StreetView,
			Attempt:    *req.Attempt,
			Round:      *req.Round,
			Players:    req.Players,
			StartTime:  req.StartTime.UTC(),
			EndTime:    req.EndTime.UTC(),
			Score:      *req.Score,
		})
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusCreated, round)
		return nil
	}
}
