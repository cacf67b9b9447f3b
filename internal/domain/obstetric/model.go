package obstetric

import (
	"fmt"
	"time"
)

const (
	// TermDays es la duración estándar de un embarazo desde la FUM (40 semanas).
	TermDays = 280

	MaxWeeks = 42
	MaxDays  = 6
)

// GestationalAge representa una edad gestacional en semanas + días.
type GestationalAge struct {
	Weeks int `json:"weeks"`
	Days  int `json:"days"`
}

// FromDays descompone días totales en semanas y días con división entera
// hacia abajo, así que Days siempre queda en 0..6 (incluso si n < 0).
func FromDays(n int) GestationalAge {
	w := floorDiv(n, 7)
	return GestationalAge{Weeks: w, Days: n - w*7}
}

func (g GestationalAge) TotalDays() int {
	return g.Weeks*7 + g.Days
}

func (g GestationalAge) String() string {
	return fmt.Sprintf("%dw%dd", g.Weeks, g.Days)
}

// Validate aplica los rangos del formulario: 0-42 semanas, 0-6 días.
func (g GestationalAge) Validate() error {
	if g.Weeks < 0 || g.Weeks > MaxWeeks {
		return &ValidationError{Field: "weeks", Message: fmt.Sprintf("weeks must be between 0 and %d", MaxWeeks)}
	}
	if g.Days < 0 || g.Days > MaxDays {
		return &ValidationError{Field: "days", Message: fmt.Sprintf("days must be between 0 and %d", MaxDays)}
	}
	return nil
}

// LMPResult es el resultado de EDD desde FUM.
type LMPResult struct {
	LMP           time.Time
	ReferenceDate time.Time
	EDD           time.Time
	GA            GestationalAge
}

// GADateResult es la fecha en que se alcanza una edad gestacional dada.
type GADateResult struct {
	EDD        time.Time
	GA         GestationalAge
	TargetDate time.Time
}

// UltrasoundResult es la EDD derivada de una ecografía.
type UltrasoundResult struct {
	UltrasoundDate time.Time
	GA             GestationalAge
	EDD            time.Time
}

// Reconciliation compara EDD por FUM vs EDD por ecografía.
type Reconciliation struct {
	LMP            time.Time
	UltrasoundDate time.Time
	UltrasoundGA   GestationalAge

	LMPEDD        time.Time
	UltrasoundEDD time.Time

	GAByLMPOnUltrasound GestationalAge
	DifferenceDays      int
	ThresholdDays       int

	UseUltrasound bool
	Recommended   time.Time
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
