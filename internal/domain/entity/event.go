package entity

import "time"

// Event es una actividad programada de la finca (vacunación, desparasitación...).
// Date es opcional: un evento sin fecha queda pendiente de agendar.
type Event struct {
	ID          int64
	Title       string
	Description string
	Date        *time.Time
}
