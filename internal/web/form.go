package web

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"edd-calculator/internal/domain/calculations"
	"edd-calculator/internal/domain/obstetric"
	"edd-calculator/internal/middleware"
	"edd-calculator/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Secciones del formulario; cada botón submit manda section=<id>.
const (
	SectionLMP        = "lmp"
	SectionGADate     = "ga"
	SectionUltrasound = "us"
	SectionReconcile  = "recon"
)

// Outcome es lo que se muestra debajo de cada sección.
type Outcome struct {
	Text  string
	Error string
}

// PageData alimenta el template. Los campos de fecha van como YYYY-MM-DD
// (valor de <input type="date">) pero el backend también acepta MMDDYYYY.
type PageData struct {
	LMP       string
	Reference string

	EDD     string
	GAWeeks string
	GADays  string

	USDate  string
	USWeeks string
	USDays  string

	Results map[string]*Outcome
}

type Handler struct {
	svc *calculations.Service
	log logger.Logger
	tpl *template.Template
}

func NewHandler(svc *calculations.Service, log logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		svc: svc,
		log: log,
		tpl: template.Must(template.New("page").Funcs(template.FuncMap{"dict": dict}).Parse(pageHTML)),
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.show)
	r.Post("/", h.submit)
}

func (h *Handler) defaults() PageData {
	today := h.svc.Today()
	return PageData{
		LMP:       obstetric.FormatPickerDate(today.AddDate(0, 0, -56)),
		Reference: obstetric.FormatPickerDate(today),
		EDD:       obstetric.FormatPickerDate(today.AddDate(0, 0, 100)),
		GAWeeks:   "0",
		GADays:    "0",
		USDate:    obstetric.FormatPickerDate(today),
		USWeeks:   "0",
		USDays:    "0",
		Results:   map[string]*Outcome{},
	}
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.defaults())
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	data := h.defaults()
	if err := r.ParseForm(); err != nil {
		data.Results[SectionLMP] = &Outcome{Error: "bad form"}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		h.render(w, data)
		return
	}

	// Los valores enviados pisan los defaults para conservar el estado del form.
	field := func(name string, dst *string) {
		if v, ok := r.PostForm[name]; ok && len(v) > 0 {
			*dst = strings.TrimSpace(v[0])
		}
	}
	field("lmp", &data.LMP)
	field("ref", &data.Reference)
	field("edd", &data.EDD)
	field("ga_weeks", &data.GAWeeks)
	field("ga_days", &data.GADays)
	field("us_date", &data.USDate)
	field("us_weeks", &data.USWeeks)
	field("us_days", &data.USDays)

	section := r.PostForm.Get("section")
	out, err := h.calculate(r.Context(), userID(r), section, data)
	switch {
	case err != nil:
		data.Results[section] = &Outcome{Error: displayError(err)}
		h.log.Debug("form calculation rejected", map[string]any{"section": section, "error": err})
	case out != nil:
		data.Results[section] = out
	default:
		data.Results[SectionLMP] = &Outcome{Error: "unknown section"}
	}

	h.render(w, data)
}

func (h *Handler) calculate(ctx context.Context, uid, section string, d PageData) (*Outcome, error) {
	switch section {
	case SectionLMP:
		c, err := h.svc.FromLMP(ctx, uid, calculations.LMPInput{LMP: d.LMP, ReferenceDate: d.Reference})
		if err != nil {
			return nil, err
		}
		return &Outcome{Text: c.Summary}, nil

	case SectionGADate:
		weeks, days, err := parseGA(d.GAWeeks, d.GADays)
		if err != nil {
			return nil, err
		}
		c, err := h.svc.DateForGA(ctx, uid, calculations.GADateInput{EDD: d.EDD, Weeks: weeks, Days: days})
		if err != nil {
			return nil, err
		}
		return &Outcome{Text: c.Summary}, nil

	case SectionUltrasound:
		weeks, days, err := parseGA(d.USWeeks, d.USDays)
		if err != nil {
			return nil, err
		}
		c, err := h.svc.FromUltrasound(ctx, uid, calculations.UltrasoundInput{UltrasoundDate: d.USDate, Weeks: weeks, Days: days})
		if err != nil {
			return nil, err
		}
		return &Outcome{Text: c.Summary}, nil

	case SectionReconcile:
		weeks, days, err := parseGA(d.USWeeks, d.USDays)
		if err != nil {
			return nil, err
		}
		c, err := h.svc.Reconcile(ctx, uid, calculations.ReconcileInput{
			LMP:            d.LMP,
			UltrasoundDate: d.USDate,
			Weeks:          weeks,
			Days:           days,
		})
		if err != nil {
			return nil, err
		}
		return &Outcome{Text: c.Summary}, nil
	}
	return nil, nil
}

func (h *Handler) render(w http.ResponseWriter, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tpl.Execute(w, data); err != nil {
		h.log.Error("render form", map[string]any{"error": err})
	}
}

func parseGA(weeksStr, daysStr string) (int, int, error) {
	weeks, err := strconv.Atoi(strings.TrimSpace(weeksStr))
	if err != nil {
		return 0, 0, &obstetric.ValidationError{Field: "weeks", Message: "weeks must be a whole number"}
	}
	days, err := strconv.Atoi(strings.TrimSpace(daysStr))
	if err != nil {
		return 0, 0, &obstetric.ValidationError{Field: "days", Message: "days must be a whole number"}
	}
	return weeks, days, nil
}

// displayError: mensaje de validación tal cual; cualquier otro error se muestra, no se propaga.
func displayError(err error) string {
	var ve *obstetric.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}

// dict arma un map para pasar varios valores a un sub-template.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, errors.New("dict: keys must be strings")
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

func userID(r *http.Request) string {
	if c, ok := middleware.GetClaims(r.Context()); ok {
		return c.UserID
	}
	return ""
}
