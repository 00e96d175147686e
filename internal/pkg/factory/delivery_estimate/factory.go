package delivery_estimate

import (
	"time"

	"service/internal/entities"
)

// окно доставки по тарифу плюс запас на дистанцию
const perKmAllowance = 3 * time.Minute

type DeliveryTimeFactory struct{}

func New() *DeliveryTimeFactory {
	return &DeliveryTimeFactory{}
}

// CalculateEstimate считает estimatedDeliveryAt один раз при создании
// заказа, дальше оценка не пересчитывается.
func (d *DeliveryTimeFactory) CalculateEstimate(tier entities.ServiceTierType, distanceKm float64, baseTime time.Time) time.Time {
	var window time.Duration
	switch tier {
	case entities.TierSameDay:
		window = 4 * time.Hour
	case entities.TierExpress:
		window = 8 * time.Hour
	case entities.TierStandard:
		window = 24 * time.Hour
	default:
		window = 24 * time.Hour
	}

	return baseTime.Add(window + time.Duration(distanceKm*float64(perKmAllowance)))
}
