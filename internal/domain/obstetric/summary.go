package obstetric

import (
	"fmt"
	"strings"
)

func (r LMPResult) Summary() string {
	return fmt.Sprintf("LMP: %s | EDD: %s | GA on %s: %s",
		FormatDate(r.LMP), FormatDate(r.EDD), FormatDate(r.ReferenceDate), r.GA)
}

func (r GADateResult) Summary() string {
	return fmt.Sprintf("Date when patient will be %s: %s", r.GA, FormatDate(r.TargetDate))
}

func (r UltrasoundResult) Summary() string {
	return fmt.Sprintf("US date: %s | US GA: %s | EDD from ultrasound: %s",
		FormatDate(r.UltrasoundDate), r.GA, FormatDate(r.EDD))
}

// Recommendation es la línea final de la conciliación.
func (r Reconciliation) Recommendation() string {
	if r.UseUltrasound {
		return "Use US EDD: " + FormatDate(r.UltrasoundEDD)
	}
	return "Keep LMP EDD: " + FormatDate(r.LMPEDD)
}

// Summary devuelve el texto multilínea (una línea por dato).
func (r Reconciliation) Summary() string {
	lines := []string{
		"EDD from LMP: " + FormatDate(r.LMPEDD),
		"EDD from US: " + FormatDate(r.UltrasoundEDD),
		"GA by LMP on US date: " + r.GAByLMPOnUltrasound.String(),
		fmt.Sprintf("Difference: %d days", r.DifferenceDays),
		fmt.Sprintf("ACOG threshold: %d days", r.ThresholdDays),
		"Recommendation: " + r.Recommendation(),
	}
	return strings.Join(lines, "\n")
}
