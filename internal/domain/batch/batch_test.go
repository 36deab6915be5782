package batch

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBatch(t *testing.T) {
	t.Run("creates planned batch without pricing date", func(t *testing.T) {
		templateID := uuid.New()
		b, err := NewBatch(templateID)
		require.NoError(t, err)

		assert.Equal(t, templateID, b.TemplateID)
		assert.Equal(t, StatusPlanned, b.Status)
		assert.Nil(t, b.PricingDate)
		assert.False(t, b.IsOpen())
	})

	t.Run("publishes BatchCreated event", func(t *testing.T) {
		b, err := NewBatch(uuid.New())
		require.NoError(t, err)

		events := b.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeBatchCreated, events[0].EventType())
	})

	t.Run("fails with nil template", func(t *testing.T) {
		_, err := NewBatch(uuid.Nil)
		require.Error(t, err)
	})
}

func TestBatch_Open(t *testing.T) {
	t.Run("pins pricing date to the calendar day", func(t *testing.T) {
		b, err := NewBatch(uuid.New())
		require.NoError(t, err)

		at := time.Date(2024, 5, 17, 15, 42, 3, 0, time.UTC)
		b.Open(at)

		assert.Equal(t, StatusOpen, b.Status)
		require.NotNil(t, b.PricingDate)
		assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), *b.PricingDate)
		assert.True(t, b.IsOpen())
	})

	t.Run("re-opening re-pins the pricing date", func(t *testing.T) {
		b, err := NewBatch(uuid.New())
		require.NoError(t, err)

		b.Open(time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC))
		b.Open(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

		require.NotNil(t, b.PricingDate)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *b.PricingDate)
	})

	t.Run("publishes BatchOpened event with the pinned date", func(t *testing.T) {
		b, err := NewBatch(uuid.New())
		require.NoError(t, err)
		b.ClearDomainEvents()

		b.Open(time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC))

		events := b.GetDomainEvents()
		require.Len(t, events, 1)
		opened, ok := events[0].(*BatchOpenedEvent)
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), opened.PricingDate)
	})
}

func TestBatch_EffectivePricingDate(t *testing.T) {
	fallback := time.Date(2024, 7, 1, 13, 0, 0, 0, time.UTC)

	t.Run("planned batch falls back to the given day", func(t *testing.T) {
		b, err := NewBatch(uuid.New())
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), b.EffectivePricingDate(fallback))
	})

	t.Run("open batch keeps its pinned date", func(t *testing.T) {
		b, err := NewBatch(uuid.New())
		require.NoError(t, err)
		b.Open(time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC))

		assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), b.EffectivePricingDate(fallback))
	})
}

func TestNewBatchTemplate(t *testing.T) {
	productID := uuid.New()

	t.Run("creates template with items", func(t *testing.T) {
		tpl, err := NewBatchTemplate("Spring Run", "March production", []TemplateItemInput{
			{ProductID: productID, Quantity: 10},
		})
		require.NoError(t, err)

		require.Len(t, tpl.Items, 1)
		assert.Equal(t, tpl.ID, tpl.Items[0].TemplateID)
		assert.Equal(t, 10, tpl.Items[0].Quantity)
	})

	t.Run("fails with quantity below one", func(t *testing.T) {
		_, err := NewBatchTemplate("Spring Run", "", []TemplateItemInput{
			{ProductID: productID, Quantity: 0},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 1")
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewBatchTemplate("", "", nil)
		require.Error(t, err)
	})
}

func TestNewSupplierSelection(t *testing.T) {
	t.Run("creates selection", func(t *testing.T) {
		s, err := NewSupplierSelection(uuid.New(), uuid.New(), uuid.New())
		require.NoError(t, err)
		assert.NotEmpty(t, s.ID)
	})

	t.Run("fails with nil ids", func(t *testing.T) {
		_, err := NewSupplierSelection(uuid.Nil, uuid.New(), uuid.New())
		require.Error(t, err)
	})
}
