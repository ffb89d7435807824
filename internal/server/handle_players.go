package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/geoguess/tracker/internal/geoguess"
	"github.com/geoguess/tracker/internal/store"
)

type PlayerRequest struct {
	Name string `json:"name" validate:"required"`
}

func (req *PlayerRequest) normalize() {
	req.Name = strings.TrimSpace(req.Name)
}

type PlayerListResponse struct {
	Players []geoguess.Player `json:"players"`
}

type PlayerDetail struct {
	geoguess.Player
	Stats geoguess.PlayerStats `json:"stats"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type PlayerRenameResponse struct {
	Message string `json:"message"`
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

func handleListPlayers(st Store) apiHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		players, err := st.ListPlayers(r.Context())
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, PlayerListResponse{Players: players})
		return nil
	}
}

func handleGetPlayer(st Store) apiHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return badRequest("invalid player id format").with("id", chi.URLParam(r, "id"))
		}

		p, err := st.GetPlayer(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return notFound("player not found")
		}
		if err != nil {
			return err
		}

		rounds, err := st.RoundsByPlayer(r.Context(), id)
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, PlayerDetail{
			Player: p,
			Stats:  geoguess.ComputeStats(rounds),
		})
		return nil
	}
}

// handleCreatePlayer treats an existing name as success with a message,
// unlike map creation which answers 409.
func handleCreatePlayer(st Store) apiHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		var req PlayerRequest
		if err := decodeBody(r, &req); err != nil {
			return err
		}

		_, err := st.FindPlayerByName(r.Context(), req.Name)
		if err == nil {
			writeMessage(w, http.StatusOK, fmt.Sprintf("Player with the name '%s' already exists", req.Name))
			return nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		p, err := st.InsertPlayer(r.Context(), geoguess.Player{Name: req.Name})
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusCreated, p)
		return nil
	}
}

func handleUpdatePlayer(st Store) apiHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		var req PlayerRequest
		if err := decodeBody(r, &req); err != nil {
			return err
		}
		id, err := pathID(r)
		if err != nil {
			return badRequest("invalid player id format").with("id", chi.URLParam(r, "id"))
		}

		old, err := st.RenamePlayer(r.Context(), id, req.Name)
		if errors.Is(err, store.ErrNotFound) {
			return notFound("player not found")
		}
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, PlayerRenameResponse{
			Message: "Updated player successfully",
			OldName: old.Name,
			NewName: req.Name,
		})
		return nil
	}
}

// handleDeletePlayer leaves rounds that reference the player in place.
func handleDeletePlayer(st Store) apiHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return badRequest("invalid player id format").with("id", chi.URLParam(r, "id"))
		}

		p, err := st.GetPlayer(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return notFound("player not found")
		}
		if err != nil {
			return err
		}

		if err := st.DeletePlayer(r.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return notFound("player not found")
			}
			return err
		}

		writeMessage(w, http.StatusOK, fmt.Sprintf("Player: %s deleted successfully", p.Name))
		return nil
	}
}
