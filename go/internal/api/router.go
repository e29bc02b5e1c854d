package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes mounts every API route on r.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequestID)
		r.Use(requestLogger)
		r.Use(middleware.Recoverer)

		r.Get("/auction", h.getAuctionStatus)

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.listPlayers)
			r.Route("/{playerID}", func(r chi.Router) {
				r.Get("/", h.getPlayer)
				r.Get("/bids", h.listPlayerBids)
				r.Post("/bids", h.placeBid)
				r.Get("/leading-bid", h.getLeadingBid)
				r.Get("/status", h.getBidStatus)
			})
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.listTeams)
			r.Get("/{teamID}", h.getTeam)
			r.Get("/{teamID}/budget", h.getTeamBudget)
		})

		r.Route("/archives", func(r chi.Router) {
			r.Get("/", h.listArchives)
			r.Route("/{archiveID}", func(r chi.Router) {
				r.Get("/", h.getArchive)
				r.Get("/players", h.listArchivePlayers)
				r.Get("/bids", h.listArchiveBids)
				r.Get("/export", h.exportArchive)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminAuth(h.config.AdminToken))

			r.Get("/settings", h.getSettings)
			r.Put("/settings", h.updateSettings)
			r.Put("/settings/{key}", h.setSetting)
			r.Post("/auction/toggle", h.toggleAuction)

			r.Post("/teams", h.createTeam)
			r.Put("/teams/{teamID}", h.updateTeam)
			r.Delete("/teams/{teamID}", h.deleteTeam)

			r.Get("/members", h.listMembers)
			r.Post("/members", h.createMember)
			r.Put("/members/{memberID}", h.assignMember)

			r.Patch("/bids/{bidID}", h.editBid)
			r.Delete("/bids/{bidID}", h.deleteBid)

			r.Delete("/players", h.clearActivePool)

			r.Post("/archives", h.createArchive)
			r.Delete("/archives/{archiveID}", h.deleteArchive)
		})
	})
}

// NewRouter returns a router serving the API.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	h.Routes(r)
	return r
}
