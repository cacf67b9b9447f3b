package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"edd-calculator/internal/domain/calculations"
	"edd-calculator/internal/domain/obstetric"
)

// fakeRow reproduce lo que devuelve database/sql para el SELECT del repo.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("expected %d columns, got %d", len(r.values), len(dest))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case *[]byte:
			*p = r.values[i].([]byte)
		case *time.Time:
			*p = r.values[i].(time.Time)
		default:
			return fmt.Errorf("unsupported dest %T", d)
		}
	}
	return nil
}

func rowFor(t *testing.T, c calculations.Calculation) fakeRow {
	t.Helper()
	input, result, err := encodeJSONB(c)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return fakeRow{values: []any{c.ID, c.UserID, string(c.Kind), input, result, c.Summary, c.CreatedAt}}
}

func TestScanCalculation_JSONBRoundTrip(t *testing.T) {
	lmp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	us := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	lmpEDD := time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC)
	usEDD := time.Date(2024, 9, 26, 0, 0, 0, 0, time.UTC)
	usGA := obstetric.GestationalAge{Weeks: 7}
	lmpGA := obstetric.GestationalAge{Weeks: 8, Days: 4}
	diff, threshold, useUS := 11, 6, true

	in := calculations.Calculation{
		ID:     "8a5c2f2e-0d4b-4c43-9f3e-2b1d8c7e6a10",
		UserID: "clinician-1",
		Kind:   calculations.KindReconcile,
		Input: calculations.Input{
			LMP:            &lmp,
			UltrasoundDate: &us,
			GA:             &usGA,
		},
		Result: calculations.Result{
			ResultDate:     usEDD,
			GA:             &lmpGA,
			LMPEDD:         &lmpEDD,
			UltrasoundEDD:  &usEDD,
			DifferenceDays: &diff,
			ThresholdDays:  &threshold,
			UseUltrasound:  &useUS,
			Recommendation: "Use US EDD: 09/26/2024",
		},
		Summary:   "Recommendation: Use US EDD: 09/26/2024",
		CreatedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}

	got, err := scanCalculation(rowFor(t, in))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	if got.ID != in.ID || got.UserID != in.UserID || got.Kind != in.Kind || got.Summary != in.Summary || !got.CreatedAt.Equal(in.CreatedAt) {
		t.Fatalf("unexpected columns: %+v", got)
	}

	sameDate := func(name string, a, b *time.Time) {
		t.Helper()
		if a == nil || b == nil || !a.Equal(*b) {
			t.Fatalf("%s: expected %v, got %v", name, b, a)
		}
	}
	sameDate("input.lmp", got.Input.LMP, in.Input.LMP)
	sameDate("input.ultrasound_date", got.Input.UltrasoundDate, in.Input.UltrasoundDate)
	sameDate("result.lmp_edd", got.Result.LMPEDD, in.Result.LMPEDD)
	sameDate("result.ultrasound_edd", got.Result.UltrasoundEDD, in.Result.UltrasoundEDD)
	if !got.Result.ResultDate.Equal(in.Result.ResultDate) {
		t.Fatalf("result_date: expected %v, got %v", in.Result.ResultDate, got.Result.ResultDate)
	}

	if got.Input.ReferenceDate != nil || got.Input.EDD != nil {
		t.Fatalf("unset inputs should stay nil: %+v", got.Input)
	}
	if got.Input.GA == nil || *got.Input.GA != usGA {
		t.Fatalf("input.ga: expected %v, got %v", usGA, got.Input.GA)
	}
	if got.Result.GA == nil || *got.Result.GA != lmpGA {
		t.Fatalf("result.ga: expected %v, got %v", lmpGA, got.Result.GA)
	}
	if *got.Result.DifferenceDays != diff || *got.Result.ThresholdDays != threshold || !*got.Result.UseUltrasound {
		t.Fatalf("unexpected reconcile fields: %+v", got.Result)
	}
	if got.Result.Recommendation != in.Result.Recommendation {
		t.Fatalf("recommendation: expected %q, got %q", in.Result.Recommendation, got.Result.Recommendation)
	}
}

func TestScanCalculation_Errors(t *testing.T) {
	if _, err := scanCalculation(fakeRow{err: sql.ErrNoRows}); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}

	row := rowFor(t, calculations.Calculation{ID: "x", Kind: calculations.KindLMP})
	row.values[3] = []byte(`{"lmp":"not a date"}`)
	if _, err := scanCalculation(row); err == nil {
		t.Fatalf("expected error for corrupt input jsonb")
	}

	row = rowFor(t, calculations.Calculation{ID: "x", Kind: calculations.KindLMP})
	row.values[4] = []byte(`[]`)
	if _, err := scanCalculation(row); err == nil {
		t.Fatalf("expected error for corrupt result jsonb")
	}
}
