package healthlog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-health/internal/domain/records"
	"pet-health/internal/domain/store"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/visits", func(vr chi.Router) {
		vr.Post("/", logVisitHandler(svc))
		vr.Get("/", listVisitsHandler(svc))
		vr.Get("/unknown", unknownVisitsHandler(svc))
		vr.Post("/{visitID}/confirm", confirmVisitHandler(svc))
		vr.Post("/{visitID}/reassign", reassignVisitHandler(svc))
		vr.Patch("/{visitID}", amendVisitHandler(svc))
		vr.Delete("/{visitID}", deleteVisitHandler(svc))
	})

	r.Get("/medications", listMedicationsHandler(svc))
	r.Get("/dump", dumpHandler(svc))

	r.Post("/pets/{petID}/medications", logMedicationHandler(svc))
	r.Post("/pets/{petID}/drinks", logDrinkHandler(svc))
	r.Post("/pets/{petID}/meals", logMealHandler(svc))
	r.Post("/pets/{petID}/thirst", logThirstHandler(svc))
	r.Post("/pets/{petID}/appetite", logAppetiteHandler(svc))
	r.Post("/pets/{petID}/wellbeing", logWellbeingHandler(svc))
	r.Post("/pets/{petID}/weight", logWeightHandler(svc))
	r.Post("/pets/{petID}/vomit", logVomitHandler(svc))
	r.Post("/pets/{petID}/logs", logGenericHandler(svc))
}

// logVisitRequest es el cuerpo para registrar una visita.
type logVisitRequest struct {
	Pet               string   `json:"pet"` // ID o nombre; opcional si confirmed=false
	DidPee            bool     `json:"did_pee"`
	DidPoop           bool     `json:"did_poop"`
	Confirmed         *bool    `json:"confirmed"` // por defecto true
	PoopConsistencies []string `json:"poop_consistencies" enums:"normal,soft,diarrhea,hard,constipated"`
	PoopColor         string   `json:"poop_color" enums:"brown,dark_brown,light_brown,bloody,green,yellow,black,unusual"`
	UrineAmount       string   `json:"urine_amount" enums:"normal,more_than_usual,less_than_usual"`
	Notes             string   `json:"notes"`
	LoggedAt          string   `json:"logged_at"` // ISO-8601 opcional; sin zona = UTC
}

type visitResponse struct {
	VisitID   string    `json:"visit_id"`
	Timestamp time.Time `json:"timestamp"`
	PetID     string    `json:"pet_id"`
	PetName   string    `json:"pet_name"`
}

type reassignRequest struct {
	Pet string `json:"pet"`
}

// amendVisitRequest solo modifica los campos presentes.
type amendVisitRequest struct {
	DidPee            *bool     `json:"did_pee"`
	DidPoop           *bool     `json:"did_poop"`
	PoopConsistencies *[]string `json:"poop_consistencies"`
	PoopColor         *string   `json:"poop_color"`
	UrineAmount       *string   `json:"urine_amount"`
	Notes             *string   `json:"notes"`
}

type visitChangeResponse struct {
	VisitID string         `json:"visit_id"`
	PetID   string         `json:"pet_id"`
	PetName string         `json:"pet_name"`
	Visit   records.Fields `json:"visit,omitempty"`
}

type logMedicationRequest struct {
	MedicationID string `json:"medication_id"`
	GivenAt      string `json:"given_at"`
	Dosage       string `json:"dosage"`
	Unit         string `json:"unit"`
	Notes        string `json:"notes"`
}

type medicationResponse struct {
	MedicationID   string    `json:"medication_id"`
	MedicationName string    `json:"medication_name"`
	Timestamp      time.Time `json:"timestamp"`
	PetID          string    `json:"pet_id"`
	PetName        string    `json:"pet_name"`
}

// logRequest cubre los campos de todas las categorías simples; cada endpoint usa los suyos.
type logRequest struct {
	Amount      string   `json:"amount" enums:"small,normal,large"`
	FoodType    string   `json:"food_type"`
	Level       string   `json:"level" enums:"normal,lessened,increased"`
	Score       string   `json:"wellbeing_score" enums:"poor,fair,good,excellent"`
	Symptoms    []string `json:"symptoms"`
	WeightGrams int      `json:"weight_grams"`
	VomitType   string   `json:"vomit_type" enums:"hairball,food,bile,other"`
	Category    string   `json:"category"`
	Notes       string   `json:"notes"`
	LoggedAt    string   `json:"logged_at"`
}

// logResponse es el registro guardado más el nombre de la mascota.
type logResponse struct {
	PetName         string         `json:"pet_name"`
	Category        string         `json:"category"`
	Record          records.Fields `json:"record"`
	WeightChange7d  *int           `json:"weight_change_7d,omitempty"`
	WeightChange30d *int           `json:"weight_change_30d,omitempty"`
}

// logVisitHandler godoc
// @Summary Registrar visita al baño
// @Description Registra pis y/o caca. Con confirmed=false y mascota ausente o desconocida la visita queda en la mascota "unknown".
// @Tags visits
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token (si API_TOKEN está configurado)"
// @Param payload body logVisitRequest true "Datos de la visita"
// @Success 201 {object} visitResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "pet not found"
// @Failure 503 {string} string "persistence failed"
// @Router /visits [post]
func logVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req logVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		at, ok := parseOptionalTime(w, "logged_at", req.LoggedAt)
		if !ok {
			return
		}

		res, err := svc.LogBathroomVisit(r.Context(), VisitInput{
			PetSelector:       req.Pet,
			DidPee:            req.DidPee,
			DidPoop:           req.DidPoop,
			Confirmed:         req.Confirmed,
			PoopConsistencies: req.PoopConsistencies,
			PoopColor:         req.PoopColor,
			UrineAmount:       req.UrineAmount,
			Notes:             req.Notes,
			LoggedAt:          at,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, visitResponse{
			VisitID:   res.VisitID,
			Timestamp: res.Timestamp,
			PetID:     res.PetID,
			PetName:   res.PetName,
		})
	}
}

// listVisitsHandler godoc
// @Summary Listar visitas
// @Description Visitas de todas las mascotas (o de una con ?pet_id=), de la más reciente a la más antigua.
// @Tags visits
// @Produce json
// @Param pet_id query string false "Filtrar por mascota"
// @Success 200 {array} object
// @Router /visits [get]
func listVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, EncodeAll(svc.ListVisits(r.URL.Query().Get("pet_id"))))
	}
}

// unknownVisitsHandler godoc
// @Summary Visitas sin mascota
// @Tags visits
// @Produce json
// @Success 200 {array} object
// @Router /visits/unknown [get]
func unknownVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, EncodeAll(svc.UnknownVisits()))
	}
}

// confirmVisitHandler godoc
// @Summary Confirmar visita
// @Tags visits
// @Produce json
// @Param visitID path string true "ID de la visita"
// @Success 200 {object} visitChangeResponse
// @Failure 404 {string} string "not found"
// @Router /visits/{visitID}/confirm [post]
func confirmVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.ConfirmVisit(r.Context(), chi.URLParam(r, "visitID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toVisitChangeResponse(res))
	}
}

// reassignVisitHandler godoc
// @Summary Reasignar visita
// @Description Mueve la visita a otra mascota y la marca como confirmada.
// @Tags visits
// @Accept json
// @Produce json
// @Param visitID path string true "ID de la visita"
// @Param payload body reassignRequest true "Mascota destino (ID o nombre)"
// @Success 200 {object} visitChangeResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "not found"
// @Router /visits/{visitID}/reassign [post]
func reassignVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reassignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		res, err := svc.ReassignVisit(r.Context(), chi.URLParam(r, "visitID"), req.Pet)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toVisitChangeResponse(res))
	}
}

// amendVisitHandler godoc
// @Summary Corregir visita
// @Description Actualiza solo los campos enviados; no cambia la confirmación.
// @Tags visits
// @Accept json
// @Produce json
// @Param visitID path string true "ID de la visita"
// @Param payload body amendVisitRequest true "Campos a corregir"
// @Success 200 {object} visitChangeResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "not found"
// @Router /visits/{visitID} [patch]
func amendVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req amendVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		res, err := svc.AmendVisit(r.Context(), chi.URLParam(r, "visitID"), AmendInput(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toVisitChangeResponse(res))
	}
}

// deleteVisitHandler godoc
// @Summary Borrar visita
// @Tags visits
// @Produce json
// @Param visitID path string true "ID de la visita"
// @Success 200 {object} visitChangeResponse
// @Failure 404 {string} string "not found"
// @Router /visits/{visitID} [delete]
func deleteVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.DeleteVisit(r.Context(), chi.URLParam(r, "visitID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toVisitChangeResponse(res))
	}
}

// listMedicationsHandler godoc
// @Summary Listar dosis de medicamentos
// @Tags medications
// @Produce json
// @Param pet_id query string false "Filtrar por mascota"
// @Success 200 {array} object
// @Router /medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, EncodeAll(svc.ListMedications(r.URL.Query().Get("pet_id"))))
	}
}

// dumpHandler godoc
// @Summary Volcado completo
// @Description Todas las categorías de cada mascota, ordenadas de la más reciente a la más antigua.
// @Tags dump
// @Produce json
// @Success 200 {object} object
// @Router /dump [get]
func dumpHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := map[string]map[string][]records.Fields{}
		for petID, recs := range svc.Dump() {
			out[petID] = EncodePetRecords(recs)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// logMedicationHandler godoc
// @Summary Registrar dosis
// @Description Registra una dosis de un medicamento configurado. dosage/unit reemplazan los configurados solo para esta dosis.
// @Tags medications
// @Accept json
// @Produce json
// @Param petID path string true "ID o nombre de la mascota"
// @Param payload body logMedicationRequest true "Dosis"
// @Success 201 {object} medicationResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "pet / medication not found"
// @Router /pets/{petID}/medications [post]
func logMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req logMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		at, ok := parseOptionalTime(w, "given_at", req.GivenAt)
		if !ok {
			return
		}

		res, err := svc.LogMedication(r.Context(), MedicationInput{
			PetSelector:  chi.URLParam(r, "petID"),
			MedicationID: req.MedicationID,
			GivenAt:      at,
			Dosage:       req.Dosage,
			Unit:         req.Unit,
			Notes:        req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, medicationResponse{
			MedicationID:   res.MedicationID,
			MedicationName: res.MedicationName,
			Timestamp:      res.Timestamp,
			PetID:          res.PetID,
			PetName:        res.PetName,
		})
	}
}

// logDrinkHandler godoc
// @Summary Registrar bebida
// @Tags logs
// @Accept json
// @Produce json
// @Param petID path string true "ID o nombre de la mascota"
// @Param payload body logRequest true "amount, notes, logged_at"
// @Success 201 {object} logResponse
// @Router /pets/{petID}/drinks [post]
func logDrinkHandler(svc *Service) http.HandlerFunc {
	return logHandler(func(r *http.Request, req logRequest, at *time.Time) (LogResult, error) {
		return svc.LogDrink(r.Context(), DrinkInput{
			PetSelector: chi.URLParam(r, "petID"),
			Amount:      req.Amount,
			Notes:       req.Notes,
			LoggedAt:    at,
		})
	})
}

// logMealHandler godoc
// @Summary Registrar comida
// @Tags logs
// @Accept json
// @Produce json
// @Param petID path string true "ID o nombre de la mascota"
// @Param payload body logRequest true "amount, food_type, notes, logged_at"
// @Success 201 {object} logResponse
// @Router /pets/{petID}/meals [post]
func logMealHandler(svc *Service) http.HandlerFunc {
	return logHandler(func(r *http.Request, req logRequest, at *time.Time) (LogResult, error) {
		return svc.LogMeal(r.Context(), MealInput{
			PetSelector: chi.URLParam(r, "petID"),
			Amount:      req.Amount,
			FoodType:    req.FoodType,
			Notes:       req.Notes,
			LoggedAt:    at,
		})
	})
}

// logThirstHandler godoc
// @Summary Registrar nivel de sed
// @Tags logs
// @Accept json
// @Produce json
// @Param petID path string true "ID o nombre de la mascota"
// @Param payload body logRequest true "level, notes, logged_at"
// @Success 201 {object} logResponse
// @Router /pets/{petID}/thirst [post]
func logThirstHandler(svc *Service) http.HandlerFunc {
	return logHandler(func(r *http.Request, req logRequest, at *time.Time) (LogResult, error) {
		return svc.LogThirst(r.Context(), LevelInput{
			PetSelector: chi.URLParam(r, "petID"),
			Level:       req.Level,
			Notes:       req.Notes,
			LoggedAt:    at,
		})
	})
}

// logAppetiteHandler godoc
// @Summary Registrar nivel de apetito
// @Tags logs
// @Accept json
// @Produce json
// @Param petID path string true "ID o nombre de la mascota"
// @Param payload body logRequest true "level, notes, logged_at"
// @Success 201 {object} logResponse
// @Router /pets/{petID}/appetite [post]
func logAppetiteHandler(svc *Service) http.HandlerFunc {
	return logHandler(func(r *http.Request, req logRequest, at *time.Time) (LogResult, error) {
		return svc.LogAppetite(r.Context(), LevelInput{
			PetSelector: chi.URLParam(r, "petID"),
			Level:       req.Level,
			Notes:       req.Notes,
			LoggedAt:    at,
		})
	})
}

// logWellbeingHandler godoc
// @Summary Registrar bienestar
// @Tags logs
// @Accept json
// @Produce json
// @Param petID path string true "ID o nombre de la mascota"
// @Param payload body logRequest true "wellbeing_score, symptoms, notes, logged_at"
// @Success 201 {object} logResponse
// @Router /pets/{petID}/wellbeing [post]
func logWellbeingHandler(svc *Service) http.HandlerFunc {
	return logHandler(func(r *http.Request, req logRequest, at *time.Time) (LogResult, error) {
		return svc.LogWellbeing(r.Context(), WellbeingInput{
			PetSelector: chi.URLParam(r, "petID"),
			Score:       req.Score,
			Symptoms:    req.Symptoms,
			Notes:       req.Notes,
			LoggedAt:    at,
		})
	})
}

// logWeightHandler godoc
// @Summary Registrar peso
// @Description Peso en gramos (100-50000). La respuesta incluye weight_change_7d / weight_change_30d cuando se pueden calcular.
// @Tags logs
// @Accept json
// @Produce json
// @Param petID path string true "ID o nombre de la mascota"
// @Param payload body logRequest true "weight_grams, notes, logged_at"
// @Success 201 {object} logResponse
// @Router /pets/{petID}/weight [post]
func logWeightHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, at, ok := decodeLogRequest(w, r)
		if !ok {
			return
		}
		res, err := svc.LogWeight(r.Context(), WeightInput{
			PetSelector: chi.URLParam(r, "petID"),
			WeightGrams: req.WeightGrams,
			Notes:       req.Notes,
			LoggedAt:    at,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		resp, err := toLogResponse(res.LogResult)
		if err != nil {
			writeError(w, err)
			return
		}
		resp.WeightChange7d = res.Change7d
		resp.WeightChange30d = res.Change30d
		writeJSON(w, http.StatusCreated, resp)
	}
}

// logVomitHandler godoc
// @Summary Registrar vómito
// @Tags logs
// @Accept json
// @Produce json
// @Param petID path string true "ID o nombre de la mascota"
// @Param payload body logRequest true "vomit_type, notes, logged_at"
// @Success 201 {object} logResponse
// @Router /pets/{petID}/vomit [post]
func logVomitHandler(svc *Service) http.HandlerFunc {
	return logHandler(func(r *http.Request, req logRequest, at *time.Time) (LogResult, error) {
		return svc.LogVomit(r.Context(), VomitInput{
			PetSelector: chi.URLParam(r, "petID"),
			VomitType:   req.VomitType,
			Notes:       req.Notes,
			LoggedAt:    at,
		})
	})
}

// logGenericHandler godoc
// @Summary Registrar entrada libre
// @Description La categoría debe estar entre las configuradas para la mascota (si tiene alguna). notes es obligatorio.
// @Tags logs
// @Accept json
// @Produce json
// @Param petID path string true "ID o nombre de la mascota"
// @Param payload body logRequest true "category, notes, logged_at"
// @Success 201 {object} logResponse
// @Router /pets/{petID}/logs [post]
func logGenericHandler(svc *Service) http.HandlerFunc {
	return logHandler(func(r *http.Request, req logRequest, at *time.Time) (LogResult, error) {
		return svc.LogGeneric(r.Context(), GenericInput{
			PetSelector: chi.URLParam(r, "petID"),
			Category:    req.Category,
			Notes:       req.Notes,
			LoggedAt:    at,
		})
	})
}

func logHandler(fn func(*http.Request, logRequest, *time.Time) (LogResult, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, at, ok := decodeLogRequest(w, r)
		if !ok {
			return
		}
		res, err := fn(r, req, at)
		if err != nil {
			writeError(w, err)
			return
		}
		resp, err := toLogResponse(res)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

func decodeLogRequest(w http.ResponseWriter, r *http.Request) (logRequest, *time.Time, bool) {
	var req logRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return logRequest{}, nil, false
	}
	at, ok := parseOptionalTime(w, "logged_at", req.LoggedAt)
	return req, at, ok
}

func parseOptionalTime(w http.ResponseWriter, field, raw string) (*time.Time, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, true
	}
	t, err := records.ParseTimestamp(raw)
	if err != nil {
		http.Error(w, field+" must be ISO-8601", http.StatusBadRequest)
		return nil, false
	}
	return &t, true
}

func toLogResponse(res LogResult) (logResponse, error) {
	f, err := records.Encode(res.Record)
	if err != nil {
		return logResponse{}, err
	}
	return logResponse{
		PetName:  res.PetName,
		Category: string(res.Record.Category()),
		Record:   f,
	}, nil
}

func toVisitChangeResponse(c VisitChange) visitChangeResponse {
	out := visitChangeResponse{VisitID: c.VisitID, PetID: c.PetID, PetName: c.PetName}
	if c.Visit != nil {
		if f, err := records.Encode(*c.Visit); err == nil {
			out.Visit = f
		}
	}
	return out
}

// writeError traduce la taxonomía de errores a códigos HTTP.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case store.IsPersistence(err):
		http.Error(w, "persistence failed", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
