package cart

import (
	"fmt"
	"testing"

	"petal-atelier/internal/domain"
	"petal-atelier/internal/storage"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func product(id string, price int64) domain.Product {
	return domain.Product{
		ID:    id,
		Name:  domain.LocalizedText{domain.LanguageEN: "Bouquet " + id, domain.LanguageID: "Buket " + id},
		Price: price,
	}
}

func newTestEngine(t *testing.T) Engine {
	t.Helper()
	return New(storage.NewMemStore(), zap.NewNop())
}

func TestAddTwiceMergesIntoSingleEntry(t *testing.T) {
	e := newTestEngine(t)
	p := product("p1", 100)

	e.Add(p)
	items := e.Add(p)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddDistinctProductsAppends(t *testing.T) {
	e := newTestEngine(t)

	e.Add(product("p1", 100))
	items := e.Add(product("p2", 50))

	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "p2", items[1].ID)
}

func TestRemove(t *testing.T) {
	e := newTestEngine(t)
	e.Add(product("p1", 100))
	e.Add(product("p2", 50))

	e.Remove("p1")

	items := e.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)

	// Unknown id is a no-op
	e.Remove("missing")
	assert.Len(t, e.Items(), 1)
}

func TestAdjustClampsAtOne(t *testing.T) {
	e := newTestEngine(t)
	e.Add(product("p1", 100))

	e.Adjust("p1", 4)
	assert.Equal(t, 5, e.Items()[0].Quantity)

	e.Adjust("p1", -100)
	items := e.Items()
	require.Len(t, items, 1, "clamping must never remove the entry")
	assert.Equal(t, 1, items[0].Quantity)
}

func TestClear(t *testing.T) {
	e := newTestEngine(t)
	e.Add(product("p1", 100))
	e.Add(product("p2", 50))

	e.Clear()

	assert.Empty(t, e.Items())
	assert.Zero(t, e.Total())
	assert.Zero(t, e.Count())
}

func TestTotalAndCount(t *testing.T) {
	e := newTestEngine(t)

	e.Add(product("p1", 100))
	e.Add(product("p2", 50))
	e.Adjust("p2", 2) // quantities 1 and 3

	assert.Equal(t, int64(100*1+50*3), e.Total())
	assert.Equal(t, 4, e.Count())
}

func TestSummary(t *testing.T) {
	e := newTestEngine(t)
	e.Add(product("p1", 100))
	e.Add(product("p2", 50))
	e.Add(product("p2", 50))

	assert.Equal(t, "Bouquet p1 x1, Bouquet p2 x2", e.Summary(domain.LanguageEN))
	assert.Equal(t, "Buket p1 x1, Buket p2 x2", e.Summary(domain.LanguageID))
}

func TestCartSurvivesReload(t *testing.T) {
	store := storage.NewMemStore()

	e := New(store, zap.NewNop())
	e.Add(product("p1", 100))
	e.Adjust("p1", 1)

	restored := New(store, zap.NewNop())
	items := restored.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartStartsEmptyOnCorruptBlob(t *testing.T) {
	store := storage.NewMemStore()
	require.NoError(t, store.Save(storage.KeyCart, "garbage"))

	e := New(store, zap.NewNop())
	assert.Empty(t, e.Items())
}

func TestProperty_TotalAndCountMatchEntries(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("total is the sum of price*quantity and count the sum of quantities", prop.ForAll(
		func(prices []int64, adjusts []int) bool {
			e := newTestEngine(t)

			for i, price := range prices {
				e.Add(product(fmt.Sprintf("p%d", i), price))
			}
			for i, delta := range adjusts {
				e.Adjust(fmt.Sprintf("p%d", i%max(len(prices), 1)), delta)
			}

			var wantTotal int64
			wantCount := 0
			for _, item := range e.Items() {
				if item.Quantity < 1 {
					t.Logf("FAIL: quantity %d below 1", item.Quantity)
					return false
				}
				wantTotal += item.Price * int64(item.Quantity)
				wantCount += item.Quantity
			}

			return e.Total() == wantTotal && e.Count() == wantCount
		},
		gen.SliceOf(gen.Int64Range(0, 1_000_000)),
		gen.SliceOf(gen.IntRange(-10, 10)),
	))

	properties.TestingRun(t)
}

func TestProperty_RepeatedAddAccumulatesQuantity(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("adding the same product n times yields one entry with quantity n", prop.ForAll(
		func(n int) bool {
			e := newTestEngine(t)
			p := product("p1", 150)

			for i := 0; i < n; i++ {
				e.Add(p)
			}

			items := e.Items()
			if len(items) != 1 {
				t.Logf("FAIL: expected 1 entry, got %d", len(items))
				return false
			}
			return items[0].Quantity == n && e.Count() == n
		},
		gen.IntRange(1, 50),
	))

	properties.TestingRun(t)
}
