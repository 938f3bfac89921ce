// Package inventory contiene la lógica de dominio pura del inventario de
// insumos: clasificación por caducidad y valoración.
package inventory

import "time"

// Status clasificación derivada de la fecha de caducidad de un insumo.
type Status string

const (
	StatusExpired      Status = "EXPIRED"
	StatusExpiringSoon Status = "EXPIRING_SOON"
	StatusGood         Status = "GOOD"
)

// DefaultWarningWindowDays ventana de aviso por defecto para "próximo a vencer".
const DefaultWarningWindowDays = 30

// ClassifyExpiry clasifica una fecha de caducidad respecto a una fecha de
// referencia (servicio de dominio, sin reloj implícito).
//
//	caducidad <  D            -> EXPIRED
//	D <= caducidad < D+ventana -> EXPIRING_SOON
//	caducidad >= D+ventana     -> GOOD
//
// Ambas fechas se normalizan al inicio de su día calendario: la comparación
// no depende de la hora.
func ClassifyExpiry(expiresAt, reference time.Time, warningWindowDays int) Status {
	exp := startOfDay(expiresAt)
	ref := startOfDay(reference)

	if exp.Before(ref) {
		return StatusExpired
	}
	if exp.Before(ref.AddDate(0, 0, warningWindowDays)) {
		return StatusExpiringSoon
	}
	return StatusGood
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
