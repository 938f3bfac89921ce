package dto

import "github.com/shopspring/decimal"

// AgeGroupDTO barra del gráfico de edades del hato.
type AgeGroupDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// AnimalSummaryDTO resumen del hato para el dashboard.
type AnimalSummaryDTO struct {
	Total       int           `json:"total"`
	Females     int           `json:"females"`
	Males       int           `json:"males"`
	NoParentage int           `json:"no_parentage"` // sin madre ni padre registrados
	AgeGroups   []AgeGroupDTO `json:"age_groups"`
}

// InventorySummaryDTO resumen de bodega para el dashboard.
type InventorySummaryDTO struct {
	TotalValue        decimal.Decimal `json:"total_value"`
	ExpiringSoonCount int             `json:"expiring_soon_count"`
	MissingPriceCount int             `json:"missing_price_count"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard.
type DashboardSummaryDTO struct {
	Animals        AnimalSummaryDTO    `json:"animals"`
	Inventory      InventorySummaryDTO `json:"inventory"`
	UpcomingEvents []EventDTO          `json:"upcoming_events"`
}
