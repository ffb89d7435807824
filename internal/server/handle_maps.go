package server

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/geoguess/tracker/internal/geoguess"
	"github.com/geoguess/tracker/internal/store"
)

type MapRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
}

func (req *MapRequest) normalize() {
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
}

// MapConflictResponse is returned when a map name is already taken.
type MapConflictResponse struct {
	Error string       `json:"error"`
	Map   geoguess.Map `json:"map"`
}

// checkMapNameExists returns the map called name, or nil if there is
// none. The check and a later insert are not atomic.
func checkMapNameExists(ctx context.Context, st Store, name string) (*geoguess.Map, error) {
	m, err := st.FindMapByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func handleListMaps(st Store) apiHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		maps, err := st.ListMaps(r.Context())
		if err != nil {
			return err
		}
		rounds, err := st.ListRounds(r.Context())
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, geoguess.JoinRounds(maps, rounds))
		return nil
	}
}

// handleGetMap answers 200 with a null body when the map does not exist.
func handleGetMap(st Store) apiHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return badRequest("invalid map id format").with("id", chi.URLParam(r, "id"))
		}

		m, err := st.GetMap(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusOK, nil)
			return nil
		}
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, m)
		return nil
	}
}

func handleCreateMap(st Store) apiHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		var req MapRequest
		if err := decodeBody(r, &req); err != nil {
			return err
		}

		existing, err := checkMapNameExists(r.Context(), st, req.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return conflict("map already exists").with("map", existing)
		}

		m, err := st.InsertMap(r.Context(), geoguess.Map{
			Name:     req.Name,
			Category: req.Category,
		})
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusCreated, m)
		return nil
	}
}

// handleInsertMaps bulk inserts maps as given. There is no per-item
// validation and no name uniqueness check. Ids are always assigned by
// the store.
func handleInsertMaps(st Store) apiHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		var maps []geoguess.Map
		if err := readJSON(r, &maps); err != nil {
			return badRequest("invalid request body")
		}
		for i := range maps {
			maps[i].ID = ""
		}

		inserted, err := st.InsertMaps(r.Context(), maps)
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, inserted)
		return nil
	}
}

func handleRandomMap(st Store) apiHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		maps, err := st.ListMaps(r.Context())
		if err != nil {
			return err
		}
		played, err := st.PlayedMapIDs(r.Context())
		if err != nil {
			return err
		}

		m, ok := geoguess.PickUnplayed(maps, played, rand.IntN)
		if !ok {
			return notFound("no unplayed maps")
		}

		writeJSON(w, http.StatusOK, m)
		return nil
	}
}
