package calculations

import (
	"time"

	"edd-calculator/internal/domain/obstetric"
)

// Kind identifica cuál de las cuatro calculadoras produjo el registro.
// @Enum lmp, ga_date, ultrasound, reconcile
type Kind string

const (
	KindLMP        Kind = "lmp"
	KindGADate     Kind = "ga_date"
	KindUltrasound Kind = "ultrasound"
	KindReconcile  Kind = "reconcile"
)

func (k Kind) Valid() bool {
	switch k {
	case KindLMP, KindGADate, KindUltrasound, KindReconcile:
		return true
	}
	return false
}

// Input guarda las entradas ya parseadas. Solo se llenan las que aplican al Kind.
type Input struct {
	LMP            *time.Time                `json:"lmp,omitempty"`
	ReferenceDate  *time.Time                `json:"reference_date,omitempty"`
	EDD            *time.Time                `json:"edd,omitempty"`
	UltrasoundDate *time.Time                `json:"ultrasound_date,omitempty"`
	GA             *obstetric.GestationalAge `json:"ga,omitempty"`
}

// Result guarda las salidas. ResultDate es la fecha "principal":
// EDD (lmp/ultrasound), fecha objetivo (ga_date) o EDD recomendada (reconcile).
type Result struct {
	ResultDate time.Time                 `json:"result_date"`
	GA         *obstetric.GestationalAge `json:"ga,omitempty"`

	LMPEDD         *time.Time `json:"lmp_edd,omitempty"`
	UltrasoundEDD  *time.Time `json:"ultrasound_edd,omitempty"`
	DifferenceDays *int       `json:"difference_days,omitempty"`
	ThresholdDays  *int       `json:"threshold_days,omitempty"`
	UseUltrasound  *bool      `json:"use_ultrasound,omitempty"`
	Recommendation string     `json:"recommendation,omitempty"`
}

// Calculation es un cálculo ya resuelto, tal como queda en el historial.
type Calculation struct {
	ID     string
	UserID string // vacío si fue anónimo

	Kind    Kind
	Input   Input
	Result  Result
	Summary string

	CreatedAt time.Time
}
