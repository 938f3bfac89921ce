// Package analytics contiene el caso de uso de agregación para el dashboard
// de la finca: resumen del hato, valoración de bodega y próximos eventos.
package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/finca-pro/internal/application/dto"
	"github.com/tu-usuario/finca-pro/internal/domain/entity"
	domaininv "github.com/tu-usuario/finca-pro/internal/domain/inventory"
	"github.com/tu-usuario/finca-pro/internal/domain/repository"
	"github.com/tu-usuario/finca-pro/pkg/cache"
)

const (
	dashboardUpcomingEvents = 2 // eventos en el widget de agenda
	dashboardCacheKey       = "dashboard:summary"
)

// DashboardUseCase genera el resumen del estado actual de la finca.
//
// Fuente de datos: repositorios read-only. Si se configura una caché, el
// resumen se sirve desde ella con TTL; si no, se calcula en cada petición.
type DashboardUseCase struct {
	supplyRepo repository.SupplyRepository
	animalRepo repository.AnimalRepository
	eventRepo  repository.EventRepository

	warningWindowDays int
	cache             cache.Client  // nil = sin caché
	cacheTTL          time.Duration
	now               func() time.Time
}

// NewDashboardUseCase construye el caso de uso. cacheClient puede ser nil.
func NewDashboardUseCase(
	supplyRepo repository.SupplyRepository,
	animalRepo repository.AnimalRepository,
	eventRepo repository.EventRepository,
	warningWindowDays int,
	cacheClient cache.Client,
	cacheTTL time.Duration,
) *DashboardUseCase {
	if warningWindowDays <= 0 {
		warningWindowDays = domaininv.DefaultWarningWindowDays
	}
	return &DashboardUseCase{
		supplyRepo:        supplyRepo,
		animalRepo:        animalRepo,
		eventRepo:         eventRepo,
		warningWindowDays: warningWindowDays,
		cache:             cacheClient,
		cacheTTL:          cacheTTL,
		now:               time.Now,
	}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres consultas en paralelo:
//  1. insumos  → valoración, sin precio, próximos a vencer
//  2. animales → totales, sexo, parentesco, grupos de edad
//  3. eventos  → próximos 2 de la agenda
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if cached := uc.fromCache(ctx); cached != nil {
		return cached, nil
	}

	type suppliesResult struct {
		list []*entity.Supply
		err  error
	}
	type animalsResult struct {
		list []*entity.Animal
		err  error
	}
	type eventsResult struct {
		list []*entity.Event
		err  error
	}

	suppliesCh := make(chan suppliesResult, 1)
	animalsCh := make(chan animalsResult, 1)
	eventsCh := make(chan eventsResult, 1)

	go func() {
		list, err := uc.supplyRepo.List()
		suppliesCh <- suppliesResult{list, err}
	}()
	go func() {
		list, err := uc.animalRepo.List()
		animalsCh <- animalsResult{list, err}
	}()
	go func() {
		list, err := uc.eventRepo.List()
		eventsCh <- eventsResult{list, err}
	}()

	supplies := <-suppliesCh
	animals := <-animalsCh
	events := <-eventsCh

	if supplies.err != nil {
		return nil, supplies.err
	}
	if animals.err != nil {
		return nil, animals.err
	}
	if events.err != nil {
		return nil, events.err
	}

	summary := &dto.DashboardSummaryDTO{
		Animals:        uc.summarizeAnimals(animals.list),
		Inventory:      uc.summarizeInventory(supplies.list),
		UpcomingEvents: upcomingEvents(events.list),
	}
	uc.toCache(ctx, summary)
	return summary, nil
}

func (uc *DashboardUseCase) summarizeInventory(supplies []*entity.Supply) dto.InventorySummaryDTO {
	now := uc.now()
	out := dto.InventorySummaryDTO{TotalValue: decimal.Zero}
	for _, s := range supplies {
		if s.Price == nil {
			out.MissingPriceCount++
		} else {
			out.TotalValue = out.TotalValue.Add(s.Price.Mul(s.Quantity))
		}
		if domaininv.ClassifyExpiry(s.ExpiresAt, now, uc.warningWindowDays) == domaininv.StatusExpiringSoon {
			out.ExpiringSoonCount++
		}
	}
	return out
}

func (uc *DashboardUseCase) summarizeAnimals(animals []*entity.Animal) dto.AnimalSummaryDTO {
	out := dto.AnimalSummaryDTO{Total: len(animals)}
	var calves, young, adults int
	for _, a := range animals {
		switch a.Sex {
		case entity.SexFemale:
			out.Females++
		case entity.SexMale:
			out.Males++
		}
		if a.Mother == "" && a.Father == "" {
			out.NoParentage++
		}
		switch {
		case a.Age < 2:
			calves++
		case a.Age <= 4:
			young++
		default:
			adults++
		}
	}
	out.AgeGroups = []dto.AgeGroupDTO{
		{Name: "Terneros (<2)", Value: calves},
		{Name: "Jóvenes (2-4)", Value: young},
		{Name: "Adultos (>4)", Value: adults},
	}
	return out
}

func upcomingEvents(events []*entity.Event) []dto.EventDTO {
	n := len(events)
	if n > dashboardUpcomingEvents {
		n = dashboardUpcomingEvents
	}
	out := make([]dto.EventDTO, 0, n)
	for _, e := range events[:n] {
		out = append(out, dto.NewEventDTO(e))
	}
	return out
}

// fromCache devuelve el resumen cacheado o nil (miss, caché desactivada o
// payload corrupto; en esos casos se recalcula).
func (uc *DashboardUseCase) fromCache(ctx context.Context) *dto.DashboardSummaryDTO {
	if uc.cache == nil {
		return nil
	}
	raw, err := uc.cache.Get(ctx, dashboardCacheKey)
	if err != nil {
		return nil
	}
	var summary dto.DashboardSummaryDTO
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil
	}
	return &summary
}

func (uc *DashboardUseCase) toCache(ctx context.Context, summary *dto.DashboardSummaryDTO) {
	if uc.cache == nil || uc.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	_ = uc.cache.Set(ctx, dashboardCacheKey, string(raw), uc.cacheTTL)
}
