package allocation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

// DefaultReserveFraction is the share of each pool quantity the fallback
// allocator holds back as an emergency reserve
const DefaultReserveFraction = 0.10

// Fallback distributes resources across ranked zones by triangular
// weighting: zone i of N (highest priority first) receives a share
// proportional to (N-i)/(1+2+...+N) of each pool quantity, after holding
// back the reserve fraction. Shares strictly decrease with rank and the
// total per kind never exceeds (1-reserve) of the pool by construction.
func Fallback(ranked []entities.Assessment, pool *entities.ResourcePool, reserveFraction float64) []entities.Allocation {
	n := len(ranked)
	if n == 0 {
		return nil
	}
	if reserveFraction < 0 || reserveFraction >= 1 {
		reserveFraction = DefaultReserveFraction
	}

	triangular := decimal.NewFromInt(int64(n * (n + 1) / 2))
	usable := decimal.NewFromFloat(1 - reserveFraction)

	allocations := make([]entities.Allocation, 0, n)
	for i, zone := range ranked {
		weight := decimal.NewFromInt(int64(n - i))

		quantities := make(map[entities.ResourceKind]entities.Quantity)
		for _, kind := range entities.DistributableKinds() {
			poolQty := decimal.NewFromInt(int64(pool.Quantity(kind)))
			share := poolQty.Mul(weight).Mul(usable).Div(triangular).Floor()
			quantities[kind] = entities.Quantity(share.IntPart())
		}

		allocations = append(allocations, entities.Allocation{
			ZoneID:        zone.ZoneID,
			ZoneName:      zone.ZoneName,
			PriorityScore: zone.PriorityScore,
			Quantities:    quantities,
			Justification: fmt.Sprintf("Proportional allocation based on priority rank %d", i+1),
		})
	}
	return allocations
}
