package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/finca-pro/internal/application/inventory"
	"github.com/tu-usuario/finca-pro/internal/domain"
	"github.com/tu-usuario/finca-pro/internal/domain/entity"
	domaininv "github.com/tu-usuario/finca-pro/internal/domain/inventory"
	"github.com/tu-usuario/finca-pro/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	svc        *inventory.Service
	store      *memory.Store
	animalRepo *memory.AnimalRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	return &fixture{
		svc: inventory.NewService(
			memory.NewTxRunner(store),
			memory.NewSupplyRepository(store),
			memory.NewMovementRepository(store),
			memory.NewAnimalRepository(store),
			0, // ventana por defecto
		),
		store:      store,
		animalRepo: memory.NewAnimalRepository(store),
	}
}

func dp(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// registerSupply da de alta un insumo válido que caduca dentro de un año.
func (f *fixture) registerSupply(t *testing.T, name string, price *decimal.Decimal) *entity.Supply {
	t.Helper()
	supply, err := f.svc.RegisterSupply(context.Background(), inventory.RegisterSupplyInput{
		Name:       name,
		Indication: "5 mL por cada 100 Kg de peso",
		Unit:       entity.UnitMilliliter,
		Price:      price,
		ExpiresAt:  time.Now().AddDate(1, 0, 0),
	})
	require.NoError(t, err)
	return supply
}

// registerAnimal crea un animal directamente en el registro.
func (f *fixture) registerAnimal(t *testing.T, name string) *entity.Animal {
	t.Helper()
	animal := &entity.Animal{
		TagNumber: "A-" + name,
		Name:      name,
		Sex:       entity.SexFemale,
		Age:       3,
	}
	require.NoError(t, f.animalRepo.Create(animal))
	return animal
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta en el catálogo
// ──────────────────────────────────────────────────────────────────────────────

// Caso: el alta arranca siempre con cantidad 0 y deja un movimiento de ajuste
// con delta 0 en el libro, de modo que la conciliación vale desde el inicio.
func TestRegisterSupply_CantidadCeroYAuditoria(t *testing.T) {
	f := newFixture(t)

	supply := f.registerSupply(t, "Vacuna X", dp("12.50"))
	assert.True(t, supply.Quantity.IsZero(), "la cantidad inicial debe ser 0")
	assert.NotZero(t, supply.ID)

	history, err := f.svc.History(context.Background(), supply.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entity.MovementTypeAdjustment, history[0].Type)
	assert.True(t, history[0].Quantity.IsZero())
	assert.Equal(t, "Insumo añadido al catálogo.", history[0].Description)
	assert.NotEmpty(t, history[0].TransactionID)

	rec, err := f.svc.Reconcile(context.Background(), supply.ID)
	require.NoError(t, err)
	assert.True(t, rec.Consistent, "el libro debe conciliar desde el alta")
}

func TestRegisterSupply_Validaciones(t *testing.T) {
	f := newFixture(t)
	valid := inventory.RegisterSupplyInput{
		Name:       "Ivermectina",
		Indication: "1 mL por cada 50 Kg",
		Unit:       entity.UnitMilliliter,
		ExpiresAt:  time.Now().AddDate(0, 6, 0),
	}

	cases := []struct {
		name   string
		mutate func(in *inventory.RegisterSupplyInput)
	}{
		{"nombre vacío", func(in *inventory.RegisterSupplyInput) { in.Name = "  " }},
		{"indicación vacía", func(in *inventory.RegisterSupplyInput) { in.Indication = "" }},
		{"unidad desconocida", func(in *inventory.RegisterSupplyInput) { in.Unit = "litros" }},
		{"sin fecha de caducidad", func(in *inventory.RegisterSupplyInput) { in.ExpiresAt = time.Time{} }},
		{"precio negativo", func(in *inventory.RegisterSupplyInput) { in.Price = dp("-1") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			_, err := f.svc.RegisterSupply(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras, usos y ajustes
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterPurchase_SumaStock(t *testing.T) {
	f := newFixture(t)
	supply := f.registerSupply(t, "Vacuna X", dp("12.50"))

	mv, err := f.svc.RegisterPurchase(context.Background(), supply.ID, decimal.NewFromInt(50), "Factura #1")
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypePurchase, mv.Type)
	assert.True(t, mv.Quantity.Equal(decimal.NewFromInt(50)), "el delta de una compra es positivo")

	got, err := f.svc.FindSupply(context.Background(), supply.ID)
	require.NoError(t, err)
	assert.True(t, got.Quantity.Equal(decimal.NewFromInt(50)))
}

func TestRegisterPurchase_CantidadInvalida(t *testing.T) {
	f := newFixture(t)
	supply := f.registerSupply(t, "Vacuna X", nil)

	_, err := f.svc.RegisterPurchase(context.Background(), supply.ID, decimal.Zero, "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.svc.RegisterPurchase(context.Background(), supply.ID, decimal.NewFromInt(-5), "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterPurchase_InsumoInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.RegisterPurchase(context.Background(), 999, decimal.NewFromInt(1), "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso: el uso descuenta stock y la descripción queda anotada con el nombre
// del animal tratado.
func TestRegisterUse_DescuentaYAnotaAnimal(t *testing.T) {
	f := newFixture(t)
	supply := f.registerSupply(t, "Vacuna X", dp("12.50"))
	animal := f.registerAnimal(t, "Bessie")

	_, err := f.svc.RegisterPurchase(context.Background(), supply.ID, decimal.NewFromInt(50), "Factura #1")
	require.NoError(t, err)

	mv, err := f.svc.RegisterUse(context.Background(), supply.ID, decimal.NewFromInt(20), animal.ID, "Dosis anual")
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeUse, mv.Type)
	assert.True(t, mv.Quantity.Equal(decimal.NewFromInt(-20)), "el delta de un uso es negativo")
	assert.Equal(t, "Dosis anual (Animal: Bessie)", mv.Description)

	got, err := f.svc.FindSupply(context.Background(), supply.ID)
	require.NoError(t, err)
	assert.True(t, got.Quantity.Equal(decimal.NewFromInt(30)))
}

// Caso: sin stock suficiente el uso se rechaza entero, el error lleva la
// cantidad disponible y ni el stock ni el libro cambian.
func TestRegisterUse_StockInsuficiente(t *testing.T) {
	f := newFixture(t)
	supply := f.registerSupply(t, "Vacuna X", nil)
	animal := f.registerAnimal(t, "Bessie")

	_, err := f.svc.RegisterPurchase(context.Background(), supply.ID, decimal.NewFromInt(30), "Factura #1")
	require.NoError(t, err)
	before, err := f.svc.History(context.Background(), supply.ID)
	require.NoError(t, err)

	_, err = f.svc.RegisterUse(context.Background(), supply.ID, decimal.NewFromInt(50), animal.ID, "Dosis")
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(30)),
		"el error debe llevar la cantidad disponible")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	got, err := f.svc.FindSupply(context.Background(), supply.ID)
	require.NoError(t, err)
	assert.True(t, got.Quantity.Equal(decimal.NewFromInt(30)), "el stock no debe cambiar")

	after, err := f.svc.History(context.Background(), supply.ID)
	require.NoError(t, err)
	assert.Len(t, after, len(before), "un uso rechazado no deja rastro en el libro")
}

func TestRegisterUse_AnimalInexistente(t *testing.T) {
	f := newFixture(t)
	supply := f.registerSupply(t, "Vacuna X", nil)

	_, err := f.svc.RegisterUse(context.Background(), supply.ID, decimal.NewFromInt(1), 999, "Dosis")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso: un ajuste que dejaría el stock negativo viola el invariante del
// catálogo; la transacción se revierte completa.
func TestRegisterAdjustment_NoPermiteStockNegativo(t *testing.T) {
	f := newFixture(t)
	supply := f.registerSupply(t, "Vacuna X", nil)

	_, err := f.svc.RegisterPurchase(context.Background(), supply.ID, decimal.NewFromInt(10), "Factura #1")
	require.NoError(t, err)

	_, err = f.svc.RegisterAdjustment(context.Background(), supply.ID, decimal.NewFromInt(-15), "Merma")
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	rec, err := f.svc.Reconcile(context.Background(), supply.ID)
	require.NoError(t, err)
	assert.True(t, rec.Consistent, "tras el rollback el libro debe seguir conciliando")
	assert.True(t, rec.Quantity.Equal(decimal.NewFromInt(10)))
}

func TestRegisterAdjustment_AdmiteCualquierSigno(t *testing.T) {
	f := newFixture(t)
	supply := f.registerSupply(t, "Vacuna X", nil)

	_, err := f.svc.RegisterAdjustment(context.Background(), supply.ID, decimal.NewFromInt(5), "Conteo físico")
	require.NoError(t, err)
	_, err = f.svc.RegisterAdjustment(context.Background(), supply.ID, decimal.NewFromInt(-2), "Frasco roto")
	require.NoError(t, err)
	_, err = f.svc.RegisterAdjustment(context.Background(), supply.ID, decimal.Zero, "Revisión sin cambios")
	require.NoError(t, err)

	got, err := f.svc.FindSupply(context.Background(), supply.ID)
	require.NoError(t, err)
	assert.True(t, got.Quantity.Equal(decimal.NewFromInt(3)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial y conciliación
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_MasRecientePrimero(t *testing.T) {
	f := newFixture(t)
	supply := f.registerSupply(t, "Vacuna X", nil)
	animal := f.registerAnimal(t, "Bessie")

	_, err := f.svc.RegisterPurchase(context.Background(), supply.ID, decimal.NewFromInt(50), "Factura #1")
	require.NoError(t, err)
	_, err = f.svc.RegisterUse(context.Background(), supply.ID, decimal.NewFromInt(20), animal.ID, "Dosis")
	require.NoError(t, err)

	history, err := f.svc.History(context.Background(), supply.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, entity.MovementTypeUse, history[0].Type)
	assert.Equal(t, entity.MovementTypePurchase, history[1].Type)
	assert.Equal(t, entity.MovementTypeAdjustment, history[2].Type, "el alta queda al fondo del historial")
}

func TestHistory_InsumoInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.History(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso: tras una secuencia de compras, usos y ajustes, reproducir el libro
// desde 0 coincide con el stock vivo.
func TestReconcile_ReproduceElLibro(t *testing.T) {
	f := newFixture(t)
	supply := f.registerSupply(t, "Vacuna X", nil)
	animal := f.registerAnimal(t, "Bessie")
	ctx := context.Background()

	_, err := f.svc.RegisterPurchase(ctx, supply.ID, decimal.NewFromInt(50), "Factura #1")
	require.NoError(t, err)
	_, err = f.svc.RegisterUse(ctx, supply.ID, decimal.NewFromInt(20), animal.ID, "Dosis")
	require.NoError(t, err)
	_, err = f.svc.RegisterAdjustment(ctx, supply.ID, decimal.NewFromInt(-3), "Frascos rotos")
	require.NoError(t, err)

	rec, err := f.svc.Reconcile(ctx, supply.ID)
	require.NoError(t, err)
	assert.True(t, rec.Consistent)
	assert.True(t, rec.Quantity.Equal(decimal.NewFromInt(27)))
	assert.True(t, rec.LedgerSum.Equal(decimal.NewFromInt(27)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas agregadas
// ──────────────────────────────────────────────────────────────────────────────

// Caso: los insumos sin precio aportan 0 al total y se cuentan aparte.
func TestValue_InsumosSinPrecio(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	conPrecio := f.registerSupply(t, "Vacuna X", dp("12.50"))
	f.registerSupply(t, "Desparasitante", nil)

	_, err := f.svc.RegisterPurchase(ctx, conPrecio.ID, decimal.NewFromInt(4), "Factura #1")
	require.NoError(t, err)

	value, err := f.svc.Value(ctx)
	require.NoError(t, err)
	assert.True(t, value.Total.Equal(decimal.RequireFromString("50")), "4 * 12.50 = 50")
	assert.Equal(t, 1, value.MissingPrice)
}

func TestExpiringWithin_FiltraSoloProximosAVencer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	register := func(name string, expiresAt time.Time) {
		_, err := f.svc.RegisterSupply(ctx, inventory.RegisterSupplyInput{
			Name:       name,
			Indication: "n/a",
			Unit:       entity.UnitCount,
			ExpiresAt:  expiresAt,
		})
		require.NoError(t, err)
	}
	register("Ya vencido", time.Now().AddDate(0, 0, -5))
	register("Por vencer", time.Now().AddDate(0, 0, 10))
	register("Lejano", time.Now().AddDate(2, 0, 0))

	list, err := f.svc.ExpiringWithin(ctx, 30)
	require.NoError(t, err)
	require.Len(t, list, 1, "los ya vencidos y los lejanos no cuentan")
	assert.Equal(t, "Por vencer", list[0].Supply.Name)
	assert.Equal(t, domaininv.StatusExpiringSoon, list[0].Status)
}

func TestExpiringWithin_VentanaInvalida(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.ExpiringWithin(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.svc.ExpiringWithin(context.Background(), -7)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListSupplies_OrdenadoYAnotado(t *testing.T) {
	f := newFixture(t)
	f.registerSupply(t, "vacuna brucelosis", nil)
	f.registerSupply(t, "Antibiótico", nil)

	list, err := f.svc.ListSupplies(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Orden por nombre sin distinguir mayúsculas.
	assert.Equal(t, "Antibiótico", list[0].Supply.Name)
	assert.Equal(t, "vacuna brucelosis", list[1].Supply.Name)
	for _, item := range list {
		assert.Equal(t, domaininv.StatusGood, item.Status)
	}
}

func TestFindSupply_NoExiste(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.FindSupply(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Las lecturas no mutan estado: repetir la misma consulta devuelve lo mismo.
func TestLecturas_Idempotentes(t *testing.T) {
	f := newFixture(t)
	supply := f.registerSupply(t, "Vacuna X", dp("12.50"))
	ctx := context.Background()

	first, err := f.svc.Reconcile(ctx, supply.ID)
	require.NoError(t, err)
	second, err := f.svc.Reconcile(ctx, supply.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	h1, err := f.svc.History(ctx, supply.ID)
	require.NoError(t, err)
	h2, err := f.svc.History(ctx, supply.ID)
	require.NoError(t, err)
	assert.Equal(t, len(h1), len(h2))
}
