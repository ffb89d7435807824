package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/geoguess/tracker/internal/geoguess"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	ID    string `json:"id,omitempty"`
}

type idPath struct {
	ID string `path:"id" description:"24 character hex object id."`
}

type playerUpdateInput struct {
	ID   string `path:"id" description:"24 character hex object id."`
	Name string `json:"name" required:"true"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Geotracker API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Records maps, players and rounds of a geography guessing game.")

	// GET /api/ping
	ping, _ := r.NewOperationContext(http.MethodGet, "/api/ping")
	ping.SetSummary("Ping")
	ping.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK), openapi.WithContentType("text/plain"))
	_ = r.AddOperation(ping)

	// GET /api/maps
	listMaps, _ := r.NewOperationContext(http.MethodGet, "/api/maps")
	listMaps.SetSummary("List maps")
	listMaps.SetDescription("Returns every map with the rounds played on it.")
	listMaps.AddRespStructure([]geoguess.MapWithRounds{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listMaps)

	// POST /api/maps
	insertMaps, _ := r.NewOperationContext(http.MethodPost, "/api/maps")
	insertMaps.SetSummary("Bulk insert maps")
	insertMaps.SetDescription("Inserts all given maps without validation or name uniqueness check.")
	insertMaps.AddReqStructure([]geoguess.Map{})
	insertMaps.AddRespStructure([]geoguess.Map{}, openapi.WithHTTPStatus(http.StatusOK))
	insertMaps.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(insertMaps)

	// GET /api/map/{id}
	getMap, _ := r.NewOperationContext(http.MethodGet, "/api/map/{id}")
	getMap.SetSummary("Get map")
	getMap.SetDescription("Returns the map, or null if it does not exist.")
	getMap.AddReqStructure(idPath{})
	getMap.AddRespStructure(geoguess.Map{}, openapi.WithHTTPStatus(http.StatusOK))
	getMap.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getMap)

	// POST /api/map
	createMap, _ := r.NewOperationContext(http.MethodPost, "/api/map")
	createMap.SetSummary("Create map")
	createMap.SetDescription("Creates a map. Names must be unique.")
	createMap.AddReqStructure(MapRequest{})
	createMap.AddRespStructure(geoguess.Map{}, openapi.WithHTTPStatus(http.StatusCreated))
	createMap.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	createMap.AddRespStructure(MapConflictResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(createMap)

	// GET /api/randomMap
	randomMap, _ := r.NewOperationContext(http.MethodGet, "/api/randomMap")
	randomMap.SetSummary("Random unplayed map")
	randomMap.SetDescription("Returns a random map that has no rounds yet.")
	randomMap.AddRespStructure(geoguess.Map{}, openapi.WithHTTPStatus(http.StatusOK))
	randomMap.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(randomMap)

	// GET /api/players
	listPlayers, _ := r.NewOperationContext(http.MethodGet, "/api/players")
	listPlayers.SetSummary("List players")
	listPlayers.AddRespStructure(PlayerListResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listPlayers)

	// GET /api/player/{id}
	getPlayer, _ := r.NewOperationContext(http.MethodGet, "/api/player/{id}")
	getPlayer.SetSummary("Get player")
	getPlayer.SetDescription("Returns the player with time played and score totals.")
	getPlayer.AddReqStructure(idPath{})
	getPlayer.AddRespStructure(PlayerDetail{}, openapi.WithHTTPStatus(http.StatusOK))
	getPlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	getPlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getPlayer)

	// POST /api/player
	createPlayer, _ := r.NewOperationContext(http.MethodPost, "/api/player")
	createPlayer.SetSummary("Create player")
	createPlayer.SetDescription("Creates a player. An existing name is answered with 200 and a message.")
	createPlayer.AddReqStructure(PlayerRequest{})
	createPlayer.AddRespStructure(geoguess.Player{}, openapi.WithHTTPStatus(http.StatusCreated))
	createPlayer.AddRespStructure(MessageResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	createPlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(createPlayer)

	// PUT /api/player/{id}
	updatePlayer, _ := r.NewOperationContext(http.MethodPut, "/api/player/{id}")
	updatePlayer.SetSummary("Rename player")
	updatePlayer.AddReqStructure(playerUpdateInput{})
	updatePlayer.AddRespStructure(PlayerRenameResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	updatePlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	updatePlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(updatePlayer)

	// DELETE /api/player/{id}
	deletePlayer, _ := r.NewOperationContext(http.MethodDelete, "/api/player/{id}")
	deletePlayer.SetSummary("Delete player")
	deletePlayer.SetDescription("Deletes a player. Rounds referencing it are kept.")
	deletePlayer.AddReqStructure(idPath{})
	deletePlayer.AddRespStructure(MessageResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	deletePlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	deletePlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(deletePlayer)

	// GET /api/rounds
	listRounds, _ := r.NewOperationContext(http.MethodGet, "/api/rounds")
	listRounds.SetSummary("List rounds")
	listRounds.AddRespStructure([]geoguess.Round{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listRounds)

	// GET /api/round/{id}
	getRound, _ := r.NewOperationContext(http.MethodGet, "/api/round/{id}")
	getRound.SetSummary("Get round")
	getRound.SetDescription("Returns the round, or null if it does not exist.")
	getRound.AddReqStructure(idPath{})
	getRound.AddRespStructure(geoguess.Round{}, openapi.WithHTTPStatus(http.StatusOK))
	getRound.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getRound)

	// POST /api/round
	createRound, _ := r.NewOperationContext(http.MethodPost, "/api/round")
	createRound.SetSummary("Create round")
	createRound.SetDescription("Records a played round. The map and every player must exist.")
	createRound.AddReqStructure(RoundRequest{})
	createRound.AddRespStructure(geoguess.Round{}, openapi.WithHTTPStatus(http.StatusCreated))
	createRound.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(createRound)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
