package calculations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"edd-calculator/internal/domain/obstetric"
	"edd-calculator/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("calculation not found")
)

const DefaultHistoryLimit = 50

type Options struct {
	Logger       logger.Logger
	HistoryLimit int
}

type Service struct {
	repo         Repository
	log          logger.Logger
	historyLimit int
	now          func() time.Time
}

func NewService(repo Repository, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	limit := opts.HistoryLimit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Service{
		repo:         repo,
		log:          log,
		historyLimit: limit,
		now:          time.Now,
	}
}

// Today es la fecha de referencia por defecto (hoy, hora local del servidor).
func (s *Service) Today() time.Time {
	return obstetric.DateOf(s.now())
}

// Las entradas llegan como texto crudo del form/JSON/CLI; el parseo vive acá
// para que las tres puertas de entrada validen igual.

type LMPInput struct {
	LMP           string
	ReferenceDate string // vacío = hoy
}

type GADateInput struct {
	EDD   string
	Weeks int
	Days  int
}

type UltrasoundInput struct {
	UltrasoundDate string
	Weeks          int
	Days           int
}

type ReconcileInput struct {
	LMP            string
	UltrasoundDate string
	Weeks          int
	Days           int
}

func (s *Service) FromLMP(ctx context.Context, userID string, in LMPInput) (Calculation, error) {
	lmp, err := obstetric.ParseDate("lmp", in.LMP)
	if err != nil {
		return Calculation{}, invalid(err)
	}
	ref := s.Today()
	if strings.TrimSpace(in.ReferenceDate) != "" {
		ref, err = obstetric.ParseDate("reference_date", in.ReferenceDate)
		if err != nil {
			return Calculation{}, invalid(err)
		}
	}

	r := obstetric.CalculateFromLMP(lmp, ref)
	ga := r.GA
	c := Calculation{
		Kind: KindLMP,
		Input: Input{
			LMP:           &r.LMP,
			ReferenceDate: &r.ReferenceDate,
		},
		Result: Result{
			ResultDate: r.EDD,
			GA:         &ga,
		},
		Summary: r.Summary(),
	}
	return s.record(ctx, userID, c), nil
}

func (s *Service) DateForGA(ctx context.Context, userID string, in GADateInput) (Calculation, error) {
	edd, err := obstetric.ParseDate("edd", in.EDD)
	if err != nil {
		return Calculation{}, invalid(err)
	}
	r, err := obstetric.DateForGestationalAge(edd, obstetric.GestationalAge{Weeks: in.Weeks, Days: in.Days})
	if err != nil {
		return Calculation{}, invalid(err)
	}

	ga := r.GA
	c := Calculation{
		Kind: KindGADate,
		Input: Input{
			EDD: &r.EDD,
			GA:  &ga,
		},
		Result:  Result{ResultDate: r.TargetDate},
		Summary: r.Summary(),
	}
	return s.record(ctx, userID, c), nil
}

func (s *Service) FromUltrasound(ctx context.Context, userID string, in UltrasoundInput) (Calculation, error) {
	usDate, err := obstetric.ParseDate("ultrasound_date", in.UltrasoundDate)
	if err != nil {
		return Calculation{}, invalid(err)
	}
	r, err := obstetric.EDDFromUltrasound(usDate, obstetric.GestationalAge{Weeks: in.Weeks, Days: in.Days})
	if err != nil {
		return Calculation{}, invalid(err)
	}

	ga := r.GA
	c := Calculation{
		Kind: KindUltrasound,
		Input: Input{
			UltrasoundDate: &r.UltrasoundDate,
			GA:             &ga,
		},
		Result:  Result{ResultDate: r.EDD},
		Summary: r.Summary(),
	}
	return s.record(ctx, userID, c), nil
}

func (s *Service) Reconcile(ctx context.Context, userID string, in ReconcileInput) (Calculation, error) {
	lmp, err := obstetric.ParseDate("lmp", in.LMP)
	if err != nil {
		return Calculation{}, invalid(err)
	}
	usDate, err := obstetric.ParseDate("ultrasound_date", in.UltrasoundDate)
	if err != nil {
		return Calculation{}, invalid(err)
	}
	r, err := obstetric.Reconcile(lmp, usDate, obstetric.GestationalAge{Weeks: in.Weeks, Days: in.Days})
	if err != nil {
		return Calculation{}, invalid(err)
	}

	usGA := r.UltrasoundGA
	lmpGA := r.GAByLMPOnUltrasound
	diff := r.DifferenceDays
	threshold := r.ThresholdDays
	useUS := r.UseUltrasound
	c := Calculation{
		Kind: KindReconcile,
		Input: Input{
			LMP:            &r.LMP,
			UltrasoundDate: &r.UltrasoundDate,
			GA:             &usGA,
		},
		Result: Result{
			ResultDate:     r.Recommended,
			GA:             &lmpGA,
			LMPEDD:         &r.LMPEDD,
			UltrasoundEDD:  &r.UltrasoundEDD,
			DifferenceDays: &diff,
			ThresholdDays:  &threshold,
			UseUltrasound:  &useUS,
			Recommendation: r.Recommendation(),
		},
		Summary: r.Summary(),
	}
	return s.record(ctx, userID, c), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Calculation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Calculation{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// ListByUser aplica el tope de historial configurado.
func (s *Service) ListByUser(ctx context.Context, userID string, limit int) ([]Calculation, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	if limit <= 0 || limit > s.historyLimit {
		limit = s.historyLimit
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

// record asigna ID/fecha y guarda en el historial.
// El historial es best effort: si falla se loguea y el resultado igual se devuelve.
func (s *Service) record(ctx context.Context, userID string, c Calculation) Calculation {
	c.ID = uuid.NewString()
	c.UserID = strings.TrimSpace(userID)
	c.CreatedAt = s.now().UTC()

	if err := s.repo.Create(ctx, c); err != nil {
		s.log.Warn("history write failed", map[string]any{
			"calculation_id": c.ID,
			"kind":           string(c.Kind),
			"error":          err,
		})
		return c
	}

	s.log.Debug("calculation recorded", map[string]any{
		"calculation_id": c.ID,
		"kind":           string(c.Kind),
	})
	return c
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
