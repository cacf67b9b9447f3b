package obstetric

import "time"

// DateOf normaliza a medianoche UTC conservando el día calendario de t.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween devuelve to - from en días calendario. Va por Unix() y no por
// Sub: time.Duration satura a los ~292 años.
func DaysBetween(from, to time.Time) int {
	return int((DateOf(to).Unix() - DateOf(from).Unix()) / secondsPerDay)
}

func addDays(t time.Time, n int) time.Time {
	return DateOf(t).AddDate(0, 0, n)
}

func EDDFromLMP(lmp time.Time) time.Time {
	return addDays(lmp, TermDays)
}

func GestationalAgeOn(lmp, ref time.Time) GestationalAge {
	return FromDays(DaysBetween(lmp, ref))
}

// CalculateFromLMP calcula EDD y la edad gestacional en la fecha de referencia.
func CalculateFromLMP(lmp, ref time.Time) LMPResult {
	return LMPResult{
		LMP:           DateOf(lmp),
		ReferenceDate: DateOf(ref),
		EDD:           EDDFromLMP(lmp),
		GA:            GestationalAgeOn(lmp, ref),
	}
}

// DateForGestationalAge: target = EDD - (280 - (w*7 + d)).
func DateForGestationalAge(edd time.Time, ga GestationalAge) (GADateResult, error) {
	if err := ga.Validate(); err != nil {
		return GADateResult{}, err
	}
	return GADateResult{
		EDD:        DateOf(edd),
		GA:         ga,
		TargetDate: addDays(edd, -(TermDays - ga.TotalDays())),
	}, nil
}

// EDDFromUltrasound: EDD = fecha eco + (280 - (w*7 + d)).
func EDDFromUltrasound(usDate time.Time, ga GestationalAge) (UltrasoundResult, error) {
	if err := ga.Validate(); err != nil {
		return UltrasoundResult{}, err
	}
	return UltrasoundResult{
		UltrasoundDate: DateOf(usDate),
		GA:             ga,
		EDD:            addDays(usDate, TermDays-ga.TotalDays()),
	}, nil
}

// Threshold devuelve el umbral ACOG (días) de discrepancia aceptada según la
// edad gestacional por FUM en días.
func Threshold(gaDays int) int {
	switch {
	case gaDays <= 62:
		return 6
	case gaDays <= 111:
		return 8
	case gaDays <= 153:
		return 11
	case gaDays <= 195:
		return 16
	default:
		return 22
	}
}

// Reconcile decide entre EDD por FUM y EDD por ecografía.
// Si |EG por FUM en la fecha eco - EG eco| >= umbral, se recomienda la EDD eco.
func Reconcile(lmp, usDate time.Time, usGA GestationalAge) (Reconciliation, error) {
	if err := usGA.Validate(); err != nil {
		return Reconciliation{}, err
	}

	gaByLMP := DaysBetween(lmp, usDate)
	diff := gaByLMP - usGA.TotalDays()
	if diff < 0 {
		diff = -diff
	}
	threshold := Threshold(gaByLMP)

	rec := Reconciliation{
		LMP:                 DateOf(lmp),
		UltrasoundDate:      DateOf(usDate),
		UltrasoundGA:        usGA,
		LMPEDD:              EDDFromLMP(lmp),
		UltrasoundEDD:       addDays(usDate, TermDays-usGA.TotalDays()),
		GAByLMPOnUltrasound: FromDays(gaByLMP),
		DifferenceDays:      diff,
		ThresholdDays:       threshold,
		UseUltrasound:       diff >= threshold,
	}
	if rec.UseUltrasound {
		rec.Recommended = rec.UltrasoundEDD
	} else {
		rec.Recommended = rec.LMPEDD
	}
	return rec, nil
}
