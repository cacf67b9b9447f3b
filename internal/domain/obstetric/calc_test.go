package obstetric

import (
	"errors"
	"testing"
	"time"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestEDDFromLMP_Always280Days(t *testing.T) {
	for _, lmp := range []time.Time{
		d(2024, 1, 1),
		d(2024, 2, 29),
		d(2023, 12, 31),
		d(2025, 3, 9), // cambio de horario en EE.UU.
		time.Date(2024, 6, 15, 23, 59, 0, 0, time.FixedZone("X", -5*3600)),
	} {
		edd := EDDFromLMP(lmp)
		if got := DaysBetween(lmp, edd); got != 280 {
			t.Fatalf("lmp=%s: expected 280 days, got %d", lmp, got)
		}
	}

	if got := EDDFromLMP(d(2024, 1, 1)); !got.Equal(d(2024, 10, 7)) {
		t.Fatalf("expected 10/07/2024, got %s", FormatDate(got))
	}
}

func TestDaysBetween_LongSpans(t *testing.T) {
	cases := []struct {
		from, to string
		want     int
	}{
		{"01011700", "01012024", 118338},
		{"01012024", "01011700", -118338},
		{"01010001", "12319999", 3652058},
	}
	for _, c := range cases {
		from, err := ParseDateText("from", c.from)
		if err != nil {
			t.Fatalf("parse %s: %v", c.from, err)
		}
		to, err := ParseDateText("to", c.to)
		if err != nil {
			t.Fatalf("parse %s: %v", c.to, err)
		}
		if got := DaysBetween(from, to); got != c.want {
			t.Fatalf("%s -> %s: expected %d days, got %d", c.from, c.to, c.want, got)
		}
	}

	ga := GestationalAgeOn(d(1700, 1, 1), d(2024, 1, 1))
	if ga.TotalDays() != 118338 || ga.Weeks != 16905 || ga.Days != 3 {
		t.Fatalf("unexpected long-span GA %s (%d days)", ga, ga.TotalDays())
	}
}

func TestGestationalAgeOn(t *testing.T) {
	ga := GestationalAgeOn(d(2024, 1, 1), d(2024, 2, 1))
	if ga.TotalDays() != 31 {
		t.Fatalf("expected 31 days, got %d", ga.TotalDays())
	}
	if ga.String() != "4w3d" {
		t.Fatalf("expected 4w3d, got %s", ga)
	}
}

func TestFromDays_FloorsNegatives(t *testing.T) {
	cases := []struct {
		n    int
		want GestationalAge
	}{
		{0, GestationalAge{0, 0}},
		{6, GestationalAge{0, 6}},
		{7, GestationalAge{1, 0}},
		{280, GestationalAge{40, 0}},
		{-1, GestationalAge{-1, 6}},
		{-7, GestationalAge{-1, 0}},
		{-8, GestationalAge{-2, 6}},
	}
	for _, c := range cases {
		if got := FromDays(c.n); got != c.want {
			t.Fatalf("FromDays(%d): expected %+v, got %+v", c.n, c.want, got)
		}
		if got := FromDays(c.n).TotalDays(); got != c.n {
			t.Fatalf("FromDays(%d).TotalDays() = %d", c.n, got)
		}
	}
}

func TestThreshold_Brackets(t *testing.T) {
	cases := map[int]int{
		0:   6,
		60:  6,
		62:  6,
		63:  8,
		70:  8,
		111: 8,
		112: 11,
		120: 11,
		153: 11,
		154: 16,
		160: 16,
		195: 16,
		196: 22,
		200: 22,
		-5:  6,
	}
	for ga, want := range cases {
		if got := Threshold(ga); got != want {
			t.Fatalf("Threshold(%d): expected %d, got %d", ga, want, got)
		}
	}
}

func TestDateForGestationalAge(t *testing.T) {
	edd := d(2024, 10, 7)

	res, err := DateForGestationalAge(edd, GestationalAge{Weeks: 40})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.TargetDate.Equal(edd) {
		t.Fatalf("40w0d should be the EDD, got %s", FormatDate(res.TargetDate))
	}

	res, err = DateForGestationalAge(edd, GestationalAge{Weeks: 4, Days: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.TargetDate.Equal(d(2024, 2, 1)) {
		t.Fatalf("expected 02/01/2024, got %s", FormatDate(res.TargetDate))
	}

	if _, err := DateForGestationalAge(edd, GestationalAge{Weeks: 43}); err == nil {
		t.Fatalf("expected error for 43 weeks")
	}
	if _, err := DateForGestationalAge(edd, GestationalAge{Weeks: 10, Days: 7}); err == nil {
		t.Fatalf("expected error for 7 days")
	}
}

func TestEDDFromUltrasound(t *testing.T) {
	res, err := EDDFromUltrasound(d(2024, 3, 1), GestationalAge{Weeks: 8, Days: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 280 - 58 = 222 días después del 03/01/2024
	if !res.EDD.Equal(d(2024, 10, 9)) {
		t.Fatalf("expected 10/09/2024, got %s", FormatDate(res.EDD))
	}
}

func TestReconcile_KeepsLMPWithinThreshold(t *testing.T) {
	lmp := d(2024, 1, 1)
	us := d(2024, 3, 1) // 60 días por FUM => umbral 6

	rec, err := Reconcile(lmp, us, FromDays(55))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.DifferenceDays != 5 || rec.ThresholdDays != 6 {
		t.Fatalf("expected diff=5 threshold=6, got diff=%d threshold=%d", rec.DifferenceDays, rec.ThresholdDays)
	}
	if rec.UseUltrasound {
		t.Fatalf("expected to keep LMP EDD")
	}
	if !rec.Recommended.Equal(EDDFromLMP(lmp)) {
		t.Fatalf("recommended should be LMP EDD")
	}
	if rec.GAByLMPOnUltrasound.String() != "8w4d" {
		t.Fatalf("expected 8w4d, got %s", rec.GAByLMPOnUltrasound)
	}
}

func TestReconcile_UsesUltrasoundAtThreshold(t *testing.T) {
	lmp := d(2024, 1, 1)
	us := d(2024, 3, 1)

	rec, err := Reconcile(lmp, us, FromDays(54))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.DifferenceDays != 6 || !rec.UseUltrasound {
		t.Fatalf("diff >= threshold should use US EDD, got %+v", rec)
	}
	if !rec.Recommended.Equal(rec.UltrasoundEDD) {
		t.Fatalf("recommended should be US EDD")
	}
}

func TestReconcile_SymmetricInDifferenceSign(t *testing.T) {
	lmp := d(2024, 1, 1)
	us := d(2024, 5, 1) // 121 días por FUM => umbral 11

	under, err := Reconcile(lmp, us, FromDays(121-11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	over, err := Reconcile(lmp, us, FromDays(121+11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if under.DifferenceDays != over.DifferenceDays {
		t.Fatalf("expected equal differences, got %d vs %d", under.DifferenceDays, over.DifferenceDays)
	}
	if under.UseUltrasound != over.UseUltrasound || !under.UseUltrasound {
		t.Fatalf("expected both to recommend US EDD")
	}
}

func TestReconcile_RejectsInvalidGA(t *testing.T) {
	_, err := Reconcile(d(2024, 1, 1), d(2024, 3, 1), GestationalAge{Weeks: 2, Days: 9})
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "days" {
		t.Fatalf("expected days validation error, got %v", err)
	}
}
