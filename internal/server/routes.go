package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, st Store) {
	h := errorHandler(logger)

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Geotracker API", "/openapi.json", "/docs"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", handlePing())

		r.Get("/maps", h(handleListMaps(st)))
		r.Post("/maps", h(handleInsertMaps(st)))
		r.Get("/map/{id}", h(handleGetMap(st)))
		r.Post("/map", h(handleCreateMap(st)))
		r.Get("/randomMap", h(handleRandomMap(st)))

		r.Get("/players", h(handleListPlayers(st)))
		r.Get("/player/{id}", h(handleGetPlayer(st)))
		r.Post("/player", h(handleCreatePlayer(st)))
		r.Put("/player/{id}", h(handleUpdatePlayer(st)))
		r.Delete("/player/{id}", h(handleDeletePlayer(st)))

		r.Get("/rounds", h(handleListRounds(st)))
		r.Get("/round/{id}", h(handleGetRound(st)))
		r.Post("/round", h(handleCreateRound(st)))
	})
}
