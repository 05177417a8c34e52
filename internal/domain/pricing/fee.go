// Package pricing computes delivery fees for orders. Everything in
// here is pure: the same items and distance always produce the same
// quote.
package pricing

import (
	"math"

	"agriconnect/internal/domain/entity"
)

// Weight contribution per quantity unit, keyed by the unit strings the
// clients send. Anything unrecognized falls back to defaultWeightFactor.
const (
	weightFactorKilogram = 1.0
	weightFactorLiter    = 1.0
	weightFactorDozenEgg = 1.2
	weightFactorBox      = 12.5
	defaultWeightFactor  = 0.5
)

const distanceFeePerKm = 2.0

// Quote is the authoritative set of derived order amounts.
type Quote struct {
	Subtotal      float64
	TotalWeightKg float64
	DistanceFee   float64
	WeightFee     float64
	DeliveryFee   float64
	GrandTotal    float64
}

// Calculate derives the order totals from its line items and travel
// distance. The subtotal always overrides whatever total the client
// sent; the total weight is rounded to two decimal places.
func Calculate(items []entity.OrderItem, distance float64) Quote {
	var subtotal, weight float64
	for _, item := range items {
		subtotal += item.Price * item.Quantity
		weight += item.Quantity * unitWeightFactor(item.Unit)
	}

	weight = math.Round(weight*100) / 100

	distanceFee := distance * distanceFeePerKm
	weightFee := weightFeeFor(weight)
	deliveryFee := distanceFee + weightFee

	return Quote{
		Subtotal:      subtotal,
		TotalWeightKg: weight,
		DistanceFee:   distanceFee,
		WeightFee:     weightFee,
		DeliveryFee:   deliveryFee,
		GrandTotal:    subtotal + deliveryFee,
	}
}

func unitWeightFactor(unit string) float64 {
	switch unit {
	case "kg":
		return weightFactorKilogram
	case "liter(1L)":
		return weightFactorLiter
	case "dozen (Egg)":
		return weightFactorDozenEgg
	case "box(10-15kg)":
		return weightFactorBox
	default:
		return defaultWeightFactor
	}
}

// weightFeeFor maps total weight onto the fee brackets. Brackets are
// closed at the upper bound, so exactly 5kg still pays the lowest fee.
func weightFeeFor(totalWeightKg float64) float64 {
	switch {
	case totalWeightKg <= 5:
		return 10
	case totalWeightKg <= 10:
		return 20
	case totalWeightKg <= 20:
		return 30
	default:
		return 50
	}
}
