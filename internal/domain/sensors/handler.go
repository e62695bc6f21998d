package sensors

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-health/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, t *Tracker) {
	r.Get("/pets/{petID}/sensors", getSensorsHandler(t))
}

// getSensorsHandler godoc
// @Summary Sensores de una mascota
// @Description Valores derivados: conteos del día y de 7 días, últimos eventos, visitas sin confirmar, dosis por medicamento y variación de peso a 7/30 días.
// @Tags sensors
// @Produce json
// @Param petID path string true "ID o nombre de la mascota (o unknown)"
// @Success 200 {object} Snapshot
// @Failure 404 {string} string "pet not found"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID}/sensors [get]
func getSensorsHandler(t *Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		p, err := t.pets.Resolve(r.Context(), petID)
		switch {
		case err == nil:
			petID = p.ID
		case errors.Is(err, pets.ErrNotFound), errors.Is(err, pets.ErrInvalidInput):
			// Sin perfil: Compute acepta "unknown" y mascotas con registros.
		default:
			writeError(w, t, err)
			return
		}

		snap, err := t.Compute(r.Context(), petID)
		if err != nil {
			writeError(w, t, err)
			return
		}

		writeJSON(w, http.StatusOK, snap)
	}
}

func writeError(w http.ResponseWriter, t *Tracker, err error) {
	if errors.Is(err, pets.ErrNotFound) {
		http.Error(w, "pet not found", http.StatusNotFound)
		return
	}
	t.log.Error("sensors request failed", map[string]any{"err": err})
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
