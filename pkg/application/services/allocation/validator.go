package allocation

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

// Validator enforces the conservation invariant: for every resource kind,
// the total allocated across zones never exceeds the pool quantity.
type Validator struct {
	log *logrus.Entry
}

// NewValidator creates an allocation validator
func NewValidator(log *logrus.Logger) *Validator {
	return &Validator{log: log.WithField("component", "allocation")}
}

// Validate returns a copy of the proposals rescaled so that every resource
// kind fits its pool quantity. Each kind is handled independently: a kind
// over pool is scaled by pool/proposed with quantities rounded down, kinds
// at or under pool are untouched. Overallocation is corrected and logged,
// never surfaced as an error, and re-validating a valid allocation is a
// no-op.
func (v *Validator) Validate(proposals []entities.Allocation, pool *entities.ResourcePool) []entities.Allocation {
	validated := make([]entities.Allocation, len(proposals))
	for i, p := range proposals {
		validated[i] = p
		validated[i].Quantities = make(map[entities.ResourceKind]entities.Quantity, len(p.Quantities))
		for kind, qty := range p.Quantities {
			validated[i].Quantities[kind] = qty
		}
	}

	for _, kind := range entities.DistributableKinds() {
		proposed := entities.TotalAllocated(validated, kind)
		available := pool.Quantity(kind)
		if proposed <= available {
			continue
		}

		v.log.WithFields(logrus.Fields{
			"kind":      kind,
			"proposed":  proposed,
			"available": available,
		}).Warn("overallocation detected, rescaling proportionally")

		// qty * available / proposed, rounded down. Multiplying before
		// dividing keeps the intermediate exact in decimal arithmetic.
		proposedDec := decimal.NewFromInt(int64(proposed))
		availableDec := decimal.NewFromInt(int64(available))
		for i := range validated {
			qty := decimal.NewFromInt(int64(validated[i].Quantities[kind]))
			scaled := qty.Mul(availableDec).Div(proposedDec).Floor()
			validated[i].Quantities[kind] = entities.Quantity(scaled.IntPart())
		}
	}

	return validated
}
