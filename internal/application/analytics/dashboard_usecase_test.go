package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/finca-pro/internal/application/analytics"
	"github.com/tu-usuario/finca-pro/internal/domain/entity"
	"github.com/tu-usuario/finca-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/finca-pro/pkg/cache"
)

// fakeCache implementación en memoria de cache.Client para los tests.
type fakeCache struct {
	data map[string]string
	sets int
	gets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	f.gets++
	v, ok := f.data[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return v, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, _ time.Duration) error {
	f.sets++
	f.data[key] = value.(string)
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

// seedStore carga un escenario representativo: 3 animales, 2 insumos (uno sin
// precio, uno por vencer) y 3 eventos.
func seedStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	animalRepo := memory.NewAnimalRepository(store)
	supplyRepo := memory.NewSupplyRepository(store)
	eventRepo := memory.NewEventRepository(store)

	animals := []*entity.Animal{
		{TagNumber: "A-001", Name: "Bessie", Sex: entity.SexFemale, Age: 1, Mother: "Luna"},
		{TagNumber: "A-002", Name: "Toro", Sex: entity.SexMale, Age: 6},
		{TagNumber: "A-003", Name: "Canela", Sex: entity.SexFemale, Age: 3},
	}
	for _, a := range animals {
		require.NoError(t, animalRepo.Create(a))
	}

	price := decimal.RequireFromString("12.50")
	now := time.Now()
	supplies := []*entity.Supply{
		{
			Name: "Vacuna X", Indication: "n/a", Unit: entity.UnitMilliliter,
			Quantity: decimal.NewFromInt(4), Price: &price,
			ExpiresAt: now.AddDate(1, 0, 0), CreatedAt: now, UpdatedAt: now,
		},
		{
			Name: "Desparasitante", Indication: "n/a", Unit: entity.UnitCount,
			Quantity: decimal.NewFromInt(10),
			ExpiresAt: now.AddDate(0, 0, 10), CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, s := range supplies {
		require.NoError(t, supplyRepo.Create(s))
	}

	date := func(day int) *time.Time {
		d := now.AddDate(0, 0, day)
		return &d
	}
	events := []*entity.Event{
		{Title: "Vacunación", Date: date(5)},
		{Title: "Desparasitación", Date: date(12)},
		{Title: "Visita veterinario", Date: date(30)},
	}
	for _, e := range events {
		require.NoError(t, eventRepo.Create(e))
	}
	return store
}

func newUseCase(store *memory.Store, c cache.Client, ttl time.Duration) *analytics.DashboardUseCase {
	return analytics.NewDashboardUseCase(
		memory.NewSupplyRepository(store),
		memory.NewAnimalRepository(store),
		memory.NewEventRepository(store),
		0, c, ttl,
	)
}

func TestGetSummary_AgregaTodo(t *testing.T) {
	uc := newUseCase(seedStore(t), nil, 0)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	// Hato: 3 animales, 2 hembras, 1 sin padres registrados.
	assert.Equal(t, 3, summary.Animals.Total)
	assert.Equal(t, 2, summary.Animals.Females)
	assert.Equal(t, 1, summary.Animals.Males)
	assert.Equal(t, 2, summary.Animals.NoParentage)
	require.Len(t, summary.Animals.AgeGroups, 3)
	assert.Equal(t, 1, summary.Animals.AgeGroups[0].Value, "un ternero (<2)")
	assert.Equal(t, 1, summary.Animals.AgeGroups[1].Value, "un joven (2-4)")
	assert.Equal(t, 1, summary.Animals.AgeGroups[2].Value, "un adulto (>4)")

	// Bodega: 12.50 * 4 = 50; uno sin precio; uno por vencer.
	assert.Equal(t, "50", summary.Inventory.TotalValue.String())
	assert.Equal(t, 1, summary.Inventory.MissingPriceCount)
	assert.Equal(t, 1, summary.Inventory.ExpiringSoonCount)

	// Agenda: solo los 2 próximos eventos.
	require.Len(t, summary.UpcomingEvents, 2)
	assert.Equal(t, "Vacunación", summary.UpcomingEvents[0].Title)
	assert.Equal(t, "Desparasitación", summary.UpcomingEvents[1].Title)
}

// Caso: con caché configurada, la segunda llamada se sirve del payload
// cacheado sin recalcular.
func TestGetSummary_UsaCache(t *testing.T) {
	fc := newFakeCache()
	uc := newUseCase(seedStore(t), fc, time.Minute)

	first, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fc.sets, "el primer cálculo debe poblar la caché")

	second, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fc.sets, "la segunda llamada no debe recalcular")
	assert.Equal(t, first.Animals, second.Animals)
	assert.Equal(t, first.Inventory.MissingPriceCount, second.Inventory.MissingPriceCount)
}

// Caso: un payload corrupto en la caché no rompe el dashboard; se recalcula.
func TestGetSummary_CacheCorrupta(t *testing.T) {
	fc := newFakeCache()
	fc.data["dashboard:summary"] = "{esto no es json"
	uc := newUseCase(seedStore(t), fc, time.Minute)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Animals.Total)
}

func TestGetSummary_FincaVacia(t *testing.T) {
	uc := newUseCase(memory.NewStore(), nil, 0)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Animals.Total)
	assert.True(t, summary.Inventory.TotalValue.IsZero())
	assert.Empty(t, summary.UpcomingEvents)
}
