// Package aggregates contiene funciones puras sobre listas de registros ya leídas del store.
// Ninguna devuelve error: sin datos, el resultado es "ausente" (ok=false) o cero.
package aggregates

import (
	"sort"
	"time"

	"pet-health/internal/domain/records"
)

const day = 24 * time.Hour

// Since filtra los registros con timestamp >= cutoff, conservando el orden.
func Since[R records.Record](recs []R, cutoff time.Time) []R {
	out := make([]R, 0, len(recs))
	for _, r := range recs {
		if !r.OccurredAt().Before(cutoff) {
			out = append(out, r)
		}
	}
	return out
}

// StartOfDay es la medianoche local (según la Location de now).
func StartOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

func CountToday[R records.Record](recs []R, now time.Time) int {
	return len(Since(recs, StartOfDay(now)))
}

func CountLastNDays[R records.Record](recs []R, now time.Time, n int) int {
	return len(Since(recs, now.Add(-time.Duration(n)*day)))
}

// HoursSinceLast usa el timestamp máximo, no el último insertado.
func HoursSinceLast[R records.Record](recs []R, now time.Time) (float64, bool) {
	latest, ok := Latest(recs)
	if !ok {
		return 0, false
	}
	return now.Sub(latest.OccurredAt()).Hours(), true
}

// Latest devuelve el registro con timestamp máximo.
func Latest[R records.Record](recs []R) (R, bool) {
	var zero R
	if len(recs) == 0 {
		return zero, false
	}
	best := recs[0]
	for _, r := range recs[1:] {
		if r.OccurredAt().After(best.OccurredAt()) {
			best = r
		}
	}
	return best, true
}

// MostRecentMatching recorre en orden de inserción inverso (no por timestamp).
func MostRecentMatching[R records.Record](recs []R, match func(R) bool) (R, bool) {
	for i := len(recs) - 1; i >= 0; i-- {
		if match(recs[i]) {
			return recs[i], true
		}
	}
	var zero R
	return zero, false
}

// SortByTimeDesc devuelve una copia ordenada del más nuevo al más viejo.
// Empates conservan el orden de inserción inverso.
func SortByTimeDesc[R records.Record](recs []R) []R {
	out := make([]R, len(recs))
	for i := range recs {
		out[i] = recs[len(recs)-1-i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt().After(out[j].OccurredAt())
	})
	return out
}

// TrendDelta compara el registro más nuevo con el más cercano que tenga al menos
// minDays días enteros de antigüedad respecto de él. sortedDesc debe venir de SortByTimeDesc.
func TrendDelta[R records.Record](sortedDesc []R, minDays int, value func(R) int) (int, bool) {
	if len(sortedDesc) < 2 {
		return 0, false
	}

	newest := sortedDesc[0]
	for _, older := range sortedDesc[1:] {
		if WholeDaysBetween(older.OccurredAt(), newest.OccurredAt()) >= minDays {
			return value(newest) - value(older), true
		}
	}
	return 0, false
}

// WholeDaysBetween trunca: 6 días y 23 horas cuentan como 6.
func WholeDaysBetween(from, to time.Time) int {
	return int(to.Sub(from) / day)
}
