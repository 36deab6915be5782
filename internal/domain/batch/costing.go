package batch

import (
	"sort"

	"github.com/cosmo/backend/internal/domain/recipe"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostRow is the cost contribution of one raw material to a batch
type CostRow struct {
	RawMaterialID uuid.UUID
	Grams         decimal.Decimal
	UnitPrice     decimal.Decimal
	Cost          decimal.Decimal
}

// CostBreakdown is the full cost picture of a batch as of its pricing date
type CostBreakdown struct {
	Rows  []CostRow
	Total decimal.Decimal
}

// AggregateNeeds sums required grams per raw material across all template
// items: each product's quantity multiplied by every item of its recipe.
// Duplicate raw material lines accumulate; products without a recipe
// contribute nothing.
func AggregateNeeds(items []TemplateItem, recipeItemsByProduct map[uuid.UUID][]recipe.RecipeItem) map[uuid.UUID]decimal.Decimal {
	needs := make(map[uuid.UUID]decimal.Decimal)
	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		for _, ri := range recipeItemsByProduct[item.ProductID] {
			needs[ri.RawMaterialID] = needs[ri.RawMaterialID].Add(ri.AmountGram.Mul(qty))
		}
	}
	return needs
}

// BuildCostBreakdown prices each required raw material with the given unit
// price lookup and assembles the sorted breakdown. Rows are ordered by the
// raw material UUID's string form so the output is deterministic; a missing
// price yields a zero-cost row, never an omitted one.
func BuildCostBreakdown(needs map[uuid.UUID]decimal.Decimal, unitPriceFor func(rawMaterialID uuid.UUID) decimal.Decimal) CostBreakdown {
	ids := make([]uuid.UUID, 0, len(needs))
	for id := range needs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	rows := make([]CostRow, 0, len(ids))
	total := decimal.Zero
	for _, id := range ids {
		grams := needs[id]
		unitPrice := unitPriceFor(id)
		cost := grams.Mul(unitPrice)
		rows = append(rows, CostRow{
			RawMaterialID: id,
			Grams:         grams,
			UnitPrice:     unitPrice,
			Cost:          cost,
		})
		total = total.Add(cost)
	}

	return CostBreakdown{Rows: rows, Total: total}
}
