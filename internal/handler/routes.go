package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripdesk/backend/spec"
)

// Routes builds the chi router for the whole API surface. Middleware is
// applied by the caller (main.go), not here.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Post("/verifyPassword", s.VerifyPassword)
		r.Get("/export", s.GetExport)

		r.Route("/vacations", func(r chi.Router) {
			r.Get("/", s.ListVacations)
			r.Post("/", s.CreateVacation)

			r.Route("/{vacationID}", func(r chi.Router) {
				r.Get("/", s.GetVacation)
				r.Put("/", s.UpdateVacation)
				r.Delete("/", s.DeleteVacation)

				r.Post("/flights", s.CreateFlight)
				r.Put("/flights/{flightID}", s.UpdateFlight)
				r.Delete("/flights/{flightID}", s.DeleteFlight)

				r.Post("/lodgings", s.CreateLodging)
				r.Put("/lodgings/{lodgingID}", s.UpdateLodging)
				r.Delete("/lodgings/{lodgingID}", s.DeleteLodging)

				r.Post("/itinerary", s.CreateItineraryDay)
				r.Put("/itinerary/{dayID}", s.UpdateItineraryDay)
				r.Delete("/itinerary/{dayID}", s.DeleteItineraryDay)

				r.Post("/markers", s.CreateMarker)
				r.Put("/markers/{dayID}", s.UpdateMarker)

				r.Post("/expenses", s.CreateExpense)
				r.Get("/expenses", s.ListExpenses)
				r.Put("/expenses/{expenseID}", s.UpdateExpense)
				r.Delete("/expenses/{expenseID}", s.DeleteExpense)
			})
		})
	})

	return r
}

// serveOpenAPI returns the embedded OpenAPI document.
// Serving it from the binary keeps the spec and the running code in sync.
func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
