package cache

import (
	"context"
	"time"

	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_cashflow_app/internal/core/ports/repositories"
	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

// MemoryResultCache keeps results in process memory. It is the fallback when
// no Redis address is configured.
type MemoryResultCache struct {
	store *gocache.Cache
}

// NewMemoryResultCache creates an in-process cache with the given TTL.
// Expired entries are purged every two TTLs.
func NewMemoryResultCache(ttl time.Duration) *MemoryResultCache {
	return &MemoryResultCache{store: gocache.New(ttl, 2*ttl)}
}

var _ portsrepo.ResultCache = (*MemoryResultCache)(nil)

// GetResult returns a deep copy of the cached result, so callers may modify it.
func (c *MemoryResultCache) GetResult(_ context.Context, key string) (*domain.SimulationResult, bool, error) {
	cached, found := c.store.Get(namespaced(key))
	if !found {
		return nil, false, nil
	}
	result, ok := cached.(domain.SimulationResult)
	if !ok {
		c.store.Delete(namespaced(key))
		return nil, false, nil
	}
	result = cloneResult(result)
	return &result, true, nil
}

// SetResult stores a result under the default expiration.
func (c *MemoryResultCache) SetResult(_ context.Context, key string, result domain.SimulationResult) error {
	c.store.Set(namespaced(key), cloneResult(result), gocache.DefaultExpiration)
	return nil
}

// cloneResult copies the rows and every pointer field so no memory is shared
// between the cached entry and its readers or writers.
func cloneResult(r domain.SimulationResult) domain.SimulationResult {
	if r.Rows != nil {
		rows := make([]domain.YearlyCashFlowRow, len(r.Rows))
		for i, row := range r.Rows {
			row.DSCR = cloneDecimal(row.DSCR)
			if row.Sale != nil {
				sale := *row.Sale
				row.Sale = &sale
			}
			rows[i] = row
		}
		r.Rows = rows
	}

	v := &r.Valuation
	v.IRR = cloneDecimal(v.IRR)
	v.DSCR = cloneDecimal(v.DSCR)
	v.MinDSCR = cloneDecimal(v.MinDSCR)
	v.CCR = cloneDecimal(v.CCR)
	v.CapRate = cloneDecimal(v.CapRate)
	v.NOIYield = cloneDecimal(v.NOIYield)
	v.GrossYield = cloneDecimal(v.GrossYield)
	v.ROI = cloneDecimal(v.ROI)
	v.PaybackPeriod = cloneDecimal(v.PaybackPeriod)
	return r
}

func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
