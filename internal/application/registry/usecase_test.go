package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/finca-pro/internal/application/registry"
	"github.com/tu-usuario/finca-pro/internal/domain"
	"github.com/tu-usuario/finca-pro/internal/infrastructure/memory"
)

func newUseCase() *registry.AnimalUseCase {
	return registry.NewAnimalUseCase(memory.NewAnimalRepository(memory.NewStore()))
}

func TestRegister_AltaYConsulta(t *testing.T) {
	uc := newUseCase()

	animal, err := uc.Register(context.Background(), registry.RegisterAnimalInput{
		TagNumber: "  A-001 ",
		Name:      " Bessie ",
		Sex:       "Hembra",
		Age:       3,
		Mother:    "Luna",
	})
	require.NoError(t, err)
	assert.NotZero(t, animal.ID)
	assert.Equal(t, "A-001", animal.TagNumber, "los espacios se recortan")
	assert.Equal(t, "Bessie", animal.Name)

	got, err := uc.Find(context.Background(), animal.ID)
	require.NoError(t, err)
	assert.Equal(t, animal.TagNumber, got.TagNumber)
}

func TestRegister_Validaciones(t *testing.T) {
	uc := newUseCase()
	valid := registry.RegisterAnimalInput{TagNumber: "A-001", Name: "Bessie", Sex: "Hembra", Age: 3}

	cases := []struct {
		name   string
		mutate func(in *registry.RegisterAnimalInput)
	}{
		{"arete vacío", func(in *registry.RegisterAnimalInput) { in.TagNumber = "  " }},
		{"nombre vacío", func(in *registry.RegisterAnimalInput) { in.Name = "" }},
		{"sexo desconocido", func(in *registry.RegisterAnimalInput) { in.Sex = "otro" }},
		{"edad negativa", func(in *registry.RegisterAnimalInput) { in.Age = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			_, err := uc.Register(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestFind_NoExiste(t *testing.T) {
	uc := newUseCase()
	_, err := uc.Find(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_OrdenadoPorNombre(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	for _, name := range []string{"canela", "Bessie", "toro"} {
		_, err := uc.Register(ctx, registry.RegisterAnimalInput{
			TagNumber: "A-" + name, Name: name, Sex: "Hembra", Age: 2,
		})
		require.NoError(t, err)
	}

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Bessie", list[0].Name)
	assert.Equal(t, "canela", list[1].Name)
	assert.Equal(t, "toro", list[2].Name)
}
