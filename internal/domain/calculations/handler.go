package calculations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"edd-calculator/internal/domain/obstetric"
	"edd-calculator/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/calculations", func(cr chi.Router) {
		cr.Post("/lmp", lmpHandler(svc))
		cr.Post("/ga-date", gaDateHandler(svc))
		cr.Post("/ultrasound", ultrasoundHandler(svc))
		cr.Post("/reconcile", reconcileHandler(svc))

		cr.Get("/{calcID}", getCalculationHandler(svc))
	})

	// Historial del usuario autenticado
	r.Get("/me/calculations", listMyCalculationsHandler(svc))
}

// lmpRequest: fechas en MMDDYYYY, YYYY-MM-DD o MM/DD/YYYY.
type lmpRequest struct {
	LMP           string `json:"lmp" example:"01012024"`
	ReferenceDate string `json:"reference_date" example:"02012024"` // opcional, default hoy
}

type gaDateRequest struct {
	EDD   string `json:"edd" example:"10/07/2024"`
	Weeks int    `json:"weeks" minimum:"0" maximum:"42"`
	Days  int    `json:"days" minimum:"0" maximum:"6"`
}

type ultrasoundRequest struct {
	UltrasoundDate string `json:"ultrasound_date" example:"2024-03-01"`
	Weeks          int    `json:"weeks" minimum:"0" maximum:"42"`
	Days           int    `json:"days" minimum:"0" maximum:"6"`
}

type reconcileRequest struct {
	LMP            string `json:"lmp" example:"01012024"`
	UltrasoundDate string `json:"ultrasound_date" example:"03012024"`
	Weeks          int    `json:"weeks" minimum:"0" maximum:"42"`
	Days           int    `json:"days" minimum:"0" maximum:"6"`
}

// gaResponse agrega el texto "4w3d" a semanas/días.
type gaResponse struct {
	Weeks int    `json:"weeks"`
	Days  int    `json:"days"`
	Text  string `json:"text"`
}

// calculationResponse es el cálculo devuelto por la API. Las fechas van en MM/DD/YYYY.
type calculationResponse struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind" enums:"lmp,ga_date,ultrasound,reconcile"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`

	LMP            string      `json:"lmp,omitempty"`
	ReferenceDate  string      `json:"reference_date,omitempty"`
	EDD            string      `json:"edd,omitempty"`
	UltrasoundDate string      `json:"ultrasound_date,omitempty"`
	InputGA        *gaResponse `json:"input_ga,omitempty"`

	ResultDate     string      `json:"result_date"`
	GA             *gaResponse `json:"ga,omitempty"`
	LMPEDD         string      `json:"lmp_edd,omitempty"`
	UltrasoundEDD  string      `json:"ultrasound_edd,omitempty"`
	DifferenceDays *int        `json:"difference_days,omitempty"`
	ThresholdDays  *int        `json:"threshold_days,omitempty"`
	UseUltrasound  *bool       `json:"use_ultrasound,omitempty"`
	Recommendation string      `json:"recommendation,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// lmpHandler godoc
// @Summary EDD desde FUM
// @Description Calcula EDD = FUM + 280 días y la edad gestacional en la fecha de referencia (default hoy).
// @Tags calculations
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev; si viene, el cálculo queda en el historial del usuario"
// @Param payload body lmpRequest true "FUM y fecha de referencia"
// @Success 200 {object} calculationResponse
// @Failure 400 {object} errorResponse
// @Router /calculations/lmp [post]
func lmpHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req lmpRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		c, err := svc.FromLMP(r.Context(), userID(r), LMPInput{
			LMP:           req.LMP,
			ReferenceDate: req.ReferenceDate,
		})
		respond(w, c, err)
	}
}

// gaDateHandler godoc
// @Summary Fecha para una edad gestacional
// @Description Devuelve la fecha en que la paciente tendrá weeks+days, dada la EDD: EDD - (280 - (w*7+d)).
// @Tags calculations
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param payload body gaDateRequest true "EDD y edad gestacional objetivo"
// @Success 200 {object} calculationResponse
// @Failure 400 {object} errorResponse
// @Router /calculations/ga-date [post]
func gaDateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gaDateRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		c, err := svc.DateForGA(r.Context(), userID(r), GADateInput{
			EDD:   req.EDD,
			Weeks: req.Weeks,
			Days:  req.Days,
		})
		respond(w, c, err)
	}
}

// ultrasoundHandler godoc
// @Summary EDD desde ecografía
// @Description EDD = fecha de eco + (280 - (w*7+d)).
// @Tags calculations
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param payload body ultrasoundRequest true "Fecha y edad gestacional de la eco"
// @Success 200 {object} calculationResponse
// @Failure 400 {object} errorResponse
// @Router /calculations/ultrasound [post]
func ultrasoundHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ultrasoundRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		c, err := svc.FromUltrasound(r.Context(), userID(r), UltrasoundInput{
			UltrasoundDate: req.UltrasoundDate,
			Weeks:          req.Weeks,
			Days:           req.Days,
		})
		respond(w, c, err)
	}
}

// reconcileHandler godoc
// @Summary Conciliar EDD por FUM vs eco
// @Description Compara la edad gestacional por FUM en la fecha de la eco con la de la eco. Si la diferencia absoluta es >= umbral ACOG (6/8/11/16/22 días según edad gestacional), recomienda la EDD por eco.
// @Tags calculations
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param payload body reconcileRequest true "FUM, fecha de eco y edad gestacional de la eco"
// @Success 200 {object} calculationResponse
// @Failure 400 {object} errorResponse
// @Router /calculations/reconcile [post]
func reconcileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reconcileRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		c, err := svc.Reconcile(r.Context(), userID(r), ReconcileInput{
			LMP:            req.LMP,
			UltrasoundDate: req.UltrasoundDate,
			Weeks:          req.Weeks,
			Days:           req.Days,
		})
		respond(w, c, err)
	}
}

// getCalculationHandler godoc
// @Summary Obtener un cálculo
// @Description Cálculos con dueño solo son visibles para ese usuario; los anónimos, para cualquiera con el ID.
// @Tags calculations
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param calcID path string true "ID del cálculo"
// @Success 200 {object} calculationResponse
// @Failure 404 {object} errorResponse
// @Router /calculations/{calcID} [get]
func getCalculationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "calcID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
				writeJSON(w, http.StatusNotFound, errorResponse{Error: "calculation not found"})
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		// No revelamos que existe un cálculo ajeno.
		if c.UserID != "" && c.UserID != userID(r) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "calculation not found"})
			return
		}

		writeJSON(w, http.StatusOK, toCalculationResponse(c))
	}
}

// listMyCalculationsHandler godoc
// @Summary Historial de cálculos
// @Description Devuelve los cálculos del usuario autenticado, más recientes primero.
// @Tags calculations
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token en producción"
// @Param limit query int false "Máximo de items (tope HISTORY_LIMIT)"
// @Success 200 {array} calculationResponse
// @Failure 401 {object} errorResponse
// @Router /me/calculations [get]
func listMyCalculationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := userID(r)
		if uid == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			return
		}

		limit := 0
		if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a non-negative integer", Field: "limit"})
				return
			}
			limit = n
		}

		items, err := svc.ListByUser(r.Context(), uid, limit)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		out := make([]calculationResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCalculationResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func userID(r *http.Request) string {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		return ""
	}
	return strings.TrimSpace(claims.UserID)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return false
	}
	return true
}

func respond(w http.ResponseWriter, c Calculation, err error) {
	if err != nil {
		var ve *obstetric.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Message, Field: ve.Field})
			return
		}
		if errors.Is(err, ErrInvalidInput) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, toCalculationResponse(c))
}

func toCalculationResponse(c Calculation) calculationResponse {
	return calculationResponse{
		ID:             c.ID,
		Kind:           c.Kind,
		Summary:        c.Summary,
		CreatedAt:      c.CreatedAt,
		LMP:            fmtDate(c.Input.LMP),
		ReferenceDate:  fmtDate(c.Input.ReferenceDate),
		EDD:            fmtDate(c.Input.EDD),
		UltrasoundDate: fmtDate(c.Input.UltrasoundDate),
		InputGA:        toGAResponse(c.Input.GA),
		ResultDate:     obstetric.FormatDate(c.Result.ResultDate),
		GA:             toGAResponse(c.Result.GA),
		LMPEDD:         fmtDate(c.Result.LMPEDD),
		UltrasoundEDD:  fmtDate(c.Result.UltrasoundEDD),
		DifferenceDays: c.Result.DifferenceDays,
		ThresholdDays:  c.Result.ThresholdDays,
		UseUltrasound:  c.Result.UseUltrasound,
		Recommendation: c.Result.Recommendation,
	}
}

func toGAResponse(ga *obstetric.GestationalAge) *gaResponse {
	if ga == nil {
		return nil
	}
	return &gaResponse{Weeks: ga.Weeks, Days: ga.Days, Text: ga.String()}
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return obstetric.FormatDate(*t)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
