package memory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/procure/pkg/domain/entities"
)

func part(id entities.PartID, risk int) *entities.Part {
	return &entities.Part{
		ID:            id,
		MPN:           "MPN-" + string(id),
		LeadTimeWeeks: 10,
		PriceUSD:      decimal.NewFromInt(3),
		RiskScore:     risk,
	}
}

func TestPartRepository_PreservesCatalogOrder(t *testing.T) {
	repo := NewPartRepository(3)
	require.NoError(t, repo.LoadParts([]*entities.Part{part("c", 1), part("a", 2), part("b", 3)}))

	all, err := repo.GetAllParts()
	require.NoError(t, err)

	ids := make([]entities.PartID, 0, len(all))
	for _, p := range all {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []entities.PartID{"c", "a", "b"}, ids)
	assert.Equal(t, 3, repo.Len())
}

func TestPartRepository_GetPart(t *testing.T) {
	repo := NewPartRepository(1)
	require.NoError(t, repo.LoadParts([]*entities.Part{part("p1", 72)}))

	got, err := repo.GetPart("p1")
	require.NoError(t, err)
	assert.Equal(t, 72, got.RiskScore)

	_, err = repo.GetPart("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrNotFound)
	assert.Equal(t, "part not found: missing", err.Error())
}

func TestPartRepository_ReturnsCopies(t *testing.T) {
	repo := NewPartRepository(1)
	require.NoError(t, repo.LoadParts([]*entities.Part{part("p1", 72)}))

	got, err := repo.GetPart("p1")
	require.NoError(t, err)
	got.RiskScore = 0

	again, err := repo.GetPart("p1")
	require.NoError(t, err)
	assert.Equal(t, 72, again.RiskScore, "callers must not be able to mutate the catalog")
}

func TestPartRepository_RejectsDuplicatesAndInvalid(t *testing.T) {
	repo := NewPartRepository(2)
	err := repo.LoadParts([]*entities.Part{part("p1", 10), part("p1", 20)})
	require.Error(t, err)
	assert.Equal(t, "duplicate part id: p1", err.Error())

	bad := part("p2", 101)
	err = NewPartRepository(1).LoadParts([]*entities.Part{bad})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}

func TestInventoryRepository_AbsenceIsNotAnError(t *testing.T) {
	repo := NewInventoryRepository()
	require.NoError(t, repo.LoadInventory([]*entities.InternalInventory{
		{PartID: "p1", Quantity: 2500, Location: "Austin TX", SafetyStock: 1000, CoverageWeeks: 8},
	}))

	inv, ok := repo.GetInventory("p1")
	require.True(t, ok)
	assert.Equal(t, 8.0, inv.CoverageWeeks)

	inv, ok = repo.GetInventory("p2")
	assert.False(t, ok)
	assert.Nil(t, inv)

	err := repo.LoadInventory([]*entities.InternalInventory{{PartID: "p1"}})
	assert.Error(t, err)
}

func TestForecastRepository(t *testing.T) {
	repo := NewForecastRepository()
	require.NoError(t, repo.LoadForecasts([]*entities.Forecast{{PartID: "p1", WeeklyDemand: 300, HorizonWeeks: 26}}))

	f, ok := repo.GetForecast("p1")
	require.True(t, ok)
	assert.Equal(t, 7800.0, f.HorizonDemand())

	_, ok = repo.GetForecast("p9")
	assert.False(t, ok)

	all, err := repo.GetAllForecasts()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLoadCatalog_WrapsErrors(t *testing.T) {
	_, err := LoadCatalog(
		[]*entities.Part{part("p1", 10)},
		[]*entities.InternalInventory{{PartID: "p1", Quantity: -5}},
		nil,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load inventory into catalog")
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}
