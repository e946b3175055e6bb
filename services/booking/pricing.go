package booking

import (
	"maison/catalog"
	"maison/models"
)

// PremiumLocationRate is the surcharge applied at the premium boutique.
const PremiumLocationRate = 0.10

// RecurringDiscountRate is the discount for clients on a recurring cadence.
const RecurringDiscountRate = 0.05

// CalculateBookingPrice derives the appointment total from the offering's
// base price. The order is fixed: base, then the location premium, then the
// recurring discount on the post-premium amount. The result is left in raw
// currency units; rounding happens only at display time.
func CalculateBookingPrice(ct models.ConsultationType, loc models.Location, recurring bool) float64 {
	price := ct.Price
	if loc.ID == catalog.PremiumLocationID {
		price *= 1 + PremiumLocationRate
	}
	if recurring {
		price *= 1 - RecurringDiscountRate
	}
	return price
}
