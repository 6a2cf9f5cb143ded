package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/brian91-1031/Kendo-Play-Recorder/handlers"
)

func SetupRoutes(
	router *chi.Mux,
	tournamentHandler *handlers.TournamentHandler,
	matchHandler *handlers.MatchHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/tournaments", func(r chi.Router) {
		r.Post("/", tournamentHandler.CreateTournamentHandler)
		r.Get("/", tournamentHandler.ListTournamentsHandler)

		r.Route("/{tournamentID}", func(r chi.Router) {
			r.Get("/", tournamentHandler.GetTournamentHandler)
			r.Delete("/", tournamentHandler.DeleteTournamentHandler)
			r.Post("/commands", tournamentHandler.ApplyCommandsHandler)
			r.Patch("/status", tournamentHandler.UpdateStatusHandler)

			r.Get("/rankings", matchHandler.RankingsHandler)
			r.Get("/rounds", matchHandler.RoundsHandler)
			r.Get("/states", matchHandler.MatchStatesHandler)

			r.Route("/matches/{matchID}", func(r chi.Router) {
				r.Post("/result", matchHandler.SubmitScoreHandler)
				r.Post("/walkover", matchHandler.WalkoverHandler)
			})
		})
	})

	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)

	router.Get("/docs/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "docs/openapi.json")
	})
	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/openapi.json"),
	))
}
