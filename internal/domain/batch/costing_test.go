package batch

import (
	"sort"
	"testing"

	"github.com/cosmo/backend/internal/domain/recipe"
	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipeItem(rawMaterialID uuid.UUID, grams string) recipe.RecipeItem {
	return recipe.RecipeItem{
		BaseEntity:    shared.NewBaseEntity(),
		RawMaterialID: rawMaterialID,
		AmountGram:    decimal.RequireFromString(grams),
	}
}

func templateItem(productID uuid.UUID, qty int) TemplateItem {
	return TemplateItem{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Quantity:   qty,
	}
}

func TestAggregateNeeds(t *testing.T) {
	rawA := uuid.New()
	rawB := uuid.New()
	productX := uuid.New()
	productY := uuid.New()

	t.Run("multiplies recipe grams by template quantity", func(t *testing.T) {
		needs := AggregateNeeds(
			[]TemplateItem{templateItem(productX, 10)},
			map[uuid.UUID][]recipe.RecipeItem{
				productX: {recipeItem(rawA, "5")},
			},
		)

		require.Len(t, needs, 1)
		assert.True(t, needs[rawA].Equal(decimal.NewFromInt(50)))
	})

	t.Run("accumulates the same raw material across products", func(t *testing.T) {
		needs := AggregateNeeds(
			[]TemplateItem{templateItem(productX, 2), templateItem(productY, 3)},
			map[uuid.UUID][]recipe.RecipeItem{
				productX: {recipeItem(rawA, "10"), recipeItem(rawB, "1")},
				productY: {recipeItem(rawA, "4")},
			},
		)

		assert.True(t, needs[rawA].Equal(decimal.NewFromInt(32))) // 2*10 + 3*4
		assert.True(t, needs[rawB].Equal(decimal.NewFromInt(2)))
	})

	t.Run("duplicate raw material lines within one recipe are additive", func(t *testing.T) {
		needs := AggregateNeeds(
			[]TemplateItem{templateItem(productX, 1)},
			map[uuid.UUID][]recipe.RecipeItem{
				productX: {recipeItem(rawA, "3"), recipeItem(rawA, "7")},
			},
		)

		assert.True(t, needs[rawA].Equal(decimal.NewFromInt(10)))
	})

	t.Run("product without recipe contributes nothing", func(t *testing.T) {
		needs := AggregateNeeds(
			[]TemplateItem{templateItem(productX, 5)},
			map[uuid.UUID][]recipe.RecipeItem{},
		)

		assert.Empty(t, needs)
	})

	t.Run("keeps fractional grams exact", func(t *testing.T) {
		needs := AggregateNeeds(
			[]TemplateItem{templateItem(productX, 3)},
			map[uuid.UUID][]recipe.RecipeItem{
				productX: {recipeItem(rawA, "0.1")},
			},
		)

		assert.True(t, needs[rawA].Equal(decimal.RequireFromString("0.3")))
	})
}

func TestBuildCostBreakdown(t *testing.T) {
	t.Run("rows sorted by raw material uuid string", func(t *testing.T) {
		needs := map[uuid.UUID]decimal.Decimal{}
		for i := 0; i < 20; i++ {
			needs[uuid.New()] = decimal.NewFromInt(int64(i + 1))
		}

		breakdown := BuildCostBreakdown(needs, func(uuid.UUID) decimal.Decimal {
			return decimal.NewFromInt(1)
		})

		require.Len(t, breakdown.Rows, 20)
		assert.True(t, sort.SliceIsSorted(breakdown.Rows, func(i, j int) bool {
			return breakdown.Rows[i].RawMaterialID.String() < breakdown.Rows[j].RawMaterialID.String()
		}))
	})

	t.Run("missing price yields explicit zero row", func(t *testing.T) {
		rawA := uuid.New()
		needs := map[uuid.UUID]decimal.Decimal{rawA: decimal.NewFromInt(50)}

		breakdown := BuildCostBreakdown(needs, func(uuid.UUID) decimal.Decimal {
			return decimal.Zero
		})

		require.Len(t, breakdown.Rows, 1)
		assert.True(t, breakdown.Rows[0].Grams.Equal(decimal.NewFromInt(50)))
		assert.True(t, breakdown.Rows[0].UnitPrice.IsZero())
		assert.True(t, breakdown.Rows[0].Cost.IsZero())
		assert.True(t, breakdown.Total.IsZero())
	})

	t.Run("total equals exact decimal sum of row costs", func(t *testing.T) {
		rawA := uuid.New()
		rawB := uuid.New()
		needs := map[uuid.UUID]decimal.Decimal{
			rawA: decimal.RequireFromString("0.1"),
			rawB: decimal.RequireFromString("0.2"),
		}
		prices := map[uuid.UUID]decimal.Decimal{
			rawA: decimal.RequireFromString("0.3"),
			rawB: decimal.RequireFromString("0.3"),
		}

		breakdown := BuildCostBreakdown(needs, func(id uuid.UUID) decimal.Decimal {
			return prices[id]
		})

		// 0.1*0.3 + 0.2*0.3 = 0.09 exactly; float64 would drift
		assert.True(t, breakdown.Total.Equal(decimal.RequireFromString("0.09")))
	})

	t.Run("single product scenario", func(t *testing.T) {
		rawX := uuid.New()
		productID := uuid.New()

		needs := AggregateNeeds(
			[]TemplateItem{templateItem(productID, 10)},
			map[uuid.UUID][]recipe.RecipeItem{
				productID: {recipeItem(rawX, "5")},
			},
		)
		breakdown := BuildCostBreakdown(needs, func(uuid.UUID) decimal.Decimal {
			return decimal.NewFromInt(2) // 100 per package of 50
		})

		require.Len(t, breakdown.Rows, 1)
		assert.True(t, breakdown.Rows[0].Grams.Equal(decimal.NewFromInt(50)))
		assert.True(t, breakdown.Rows[0].Cost.Equal(decimal.NewFromInt(100)))
		assert.True(t, breakdown.Total.Equal(decimal.NewFromInt(100)))
	})

	t.Run("empty needs produce empty breakdown with zero total", func(t *testing.T) {
		breakdown := BuildCostBreakdown(nil, func(uuid.UUID) decimal.Decimal {
			return decimal.NewFromInt(1)
		})

		assert.Empty(t, breakdown.Rows)
		assert.True(t, breakdown.Total.IsZero())
	})
}
