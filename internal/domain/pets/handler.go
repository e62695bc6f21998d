package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
	})
}

type medicationRequest struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Dosage    string   `json:"dosage"`
	Unit      string   `json:"unit"`
	Frequency string   `json:"frequency" enums:"as_needed,daily,twice_daily,three_times_daily,every_8_hours,every_12_hours,weekly"`
	Times     []string `json:"times"`      // HH:MM
	StartDate string   `json:"start_date"` // YYYY-MM-DD opcional
	Active    *bool    `json:"active"`
	Notes     string   `json:"notes"`
}

// createPetRequest es el cuerpo para registrar una mascota.
type createPetRequest struct {
	ID            string              `json:"id"` // opcional
	Name          string              `json:"name"`
	Type          string              `json:"type" enums:"cat,dog,other"`
	Medications   []medicationRequest `json:"medications"`
	LogCategories []string            `json:"log_categories"`
}

type medicationResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Dosage    string              `json:"dosage"`
	Unit      string              `json:"unit"`
	Frequency MedicationFrequency `json:"frequency"`
	Times     []string            `json:"times"`
	StartDate *time.Time          `json:"start_date,omitempty"`
	Active    bool                `json:"active"`
	Notes     string              `json:"notes"`
}

type petResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Type          PetType              `json:"type"`
	Medications   []medicationResponse `json:"medications"`
	LogCategories []string             `json:"log_categories"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Registra una mascota con sus medicamentos configurados y categorías de registro libre.
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token (si API_TOKEN está configurado)"
// @Param payload body createPetRequest true "Perfil de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := CreateInput{
			ID:            req.ID,
			Name:          req.Name,
			Type:          req.Type,
			LogCategories: req.LogCategories,
		}
		for _, m := range req.Medications {
			mi := MedicationInput{
				ID:        m.ID,
				Name:      m.Name,
				Dosage:    m.Dosage,
				Unit:      m.Unit,
				Frequency: m.Frequency,
				Times:     m.Times,
				Active:    m.Active,
				Notes:     m.Notes,
			}
			if strings.TrimSpace(m.StartDate) != "" {
				t, err := time.Parse("2006-01-02", m.StartDate)
				if err != nil {
					http.Error(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
					return
				}
				mi.StartDate = &t
			}
			in.Medications = append(in.Medications, mi)
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Description Acepta el ID o el nombre de la mascota.
// @Tags pets
// @Produce json
// @Param petID path string true "ID o nombre de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Resolve(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	meds := make([]medicationResponse, 0, len(p.Medications))
	for _, m := range p.Medications {
		times := m.Times
		if times == nil {
			times = []string{}
		}
		meds = append(meds, medicationResponse{
			ID:        m.ID,
			Name:      m.Name,
			Dosage:    m.Dosage,
			Unit:      m.Unit,
			Frequency: m.Frequency,
			Times:     times,
			StartDate: m.StartDate,
			Active:    m.Active,
			Notes:     m.Notes,
		})
	}

	cats := p.LogCategories
	if cats == nil {
		cats = []string{}
	}

	return petResponse{
		ID:            p.ID,
		Name:          p.Name,
		Type:          p.Type,
		Medications:   meds,
		LogCategories: cats,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (pets/healthlog)
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
