package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Resolver resolves a per-gram unit price for one raw material as of a
// pricing date. The boolean reports whether this tier produced a price;
// a miss is not an error, the next tier gets its turn.
type Resolver interface {
	Resolve(ctx context.Context, batchID, rawMaterialID uuid.UUID, date time.Time) (decimal.Decimal, bool, error)
}

// Chain tries each resolver in order and falls back to zero when every tier
// misses. The tier order is the pricing contract: batch override and default
// offer first, manual price second, zero last.
type Chain struct {
	resolvers []Resolver
}

// NewChain creates a resolver chain with the given tier order
func NewChain(resolvers ...Resolver) *Chain {
	return &Chain{resolvers: resolvers}
}

// UnitPrice resolves the per-gram price for a raw material as of the given
// date. A raw material no tier can price costs zero; it is never an error.
func (c *Chain) UnitPrice(ctx context.Context, batchID, rawMaterialID uuid.UUID, date time.Time) (decimal.Decimal, error) {
	for _, r := range c.resolvers {
		price, ok, err := r.Resolve(ctx, batchID, rawMaterialID, date)
		if err != nil {
			return decimal.Zero, err
		}
		if ok {
			return price, nil
		}
	}
	return decimal.Zero, nil
}
