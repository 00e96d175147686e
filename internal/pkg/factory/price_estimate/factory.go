// Package price_estimate считает дистанцию и стоимость доставки.
//
// Дистанция это заявленная эвристика, не геокодинг: адреса относятся к
// локалитету по вхождению подстроки, пара в одном локалитете дает
// дистанцию из короткого диапазона, пара в разных из длинного. Точка
// внутри диапазона случайная (поведение исходной платформы сохранено),
// диапазон для данной пары детерминирован.
package price_estimate

import (
	"math"
	"math/rand"
	"strings"
	"sync"

	"service/internal/entities"
)

// тарифная сетка, суммы в целых единицах валюты
const (
	BaseFare  = 5000
	PerKmRate = 1000.0
	PerKgRate = 500.0

	electronicsBaseSurcharge = 1500
	foodPerKmRate            = 1200.0

	tierSurchargeStandard = 0
	tierSurchargeExpress  = 1500
	tierSurchargeSameDay  = 3000
)

// диапазоны дистанций, км
const (
	sameLocalityMinKm  = 5.0
	sameLocalityMaxKm  = 15.0
	crossLocalityMinKm = 15.0
	crossLocalityMaxKm = 45.0
)

// localities список локалитетов для классификации адресов подстрокой.
// Адрес вне списка считается "чужим" локалитетом.
var localities = []string{
	"Yangon",
	"Mandalay",
	"Naypyidaw",
	"Bago",
	"Thanlyin",
}

type Estimator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func New(src rand.Source) *Estimator {
	return &Estimator{
		rnd: rand.New(src),
	}
}

// Estimate чистая функция без внешних вызовов. Невалидный вес или
// неизвестный тип посылки/тарифа отклоняются, молчаливых дефолтов нет.
func (e *Estimator) Estimate(
	senderAddress, receiverAddress string,
	weightKg float64,
	packageType entities.PackageType,
	serviceTier entities.ServiceTierType,
) (entities.PriceQuote, error) {
	if weightKg < 0 || math.IsNaN(weightKg) || math.IsInf(weightKg, 0) {
		return entities.PriceQuote{}, ErrInvalidWeight
	}
	if !packageType.IsValid() {
		return entities.PriceQuote{}, ErrUnknownPackageType
	}
	if !serviceTier.IsValid() {
		return entities.PriceQuote{}, ErrUnknownServiceTier
	}

	distanceKm := e.sampleDistance(senderAddress, receiverAddress)

	baseFare := float64(BaseFare)
	perKm := PerKmRate
	perKg := PerKgRate

	switch packageType {
	case entities.PackageElectronics:
		baseFare += electronicsBaseSurcharge
	case entities.PackageFood:
		perKm = foodPerKmRate
	case entities.PackageDocument:
		perKg = 0
	case entities.PackageApparel, entities.PackageOther:
	}

	amount := baseFare + distanceKm*perKm + weightKg*perKg + float64(tierSurcharge(serviceTier))

	return entities.PriceQuote{
		DistanceKm: distanceKm,
		Amount:     int64(math.Round(amount)),
	}, nil
}

func tierSurcharge(tier entities.ServiceTierType) int64 {
	switch tier {
	case entities.TierExpress:
		return tierSurchargeExpress
	case entities.TierSameDay:
		return tierSurchargeSameDay
	default:
		return tierSurchargeStandard
	}
}

func (e *Estimator) sampleDistance(senderAddress, receiverAddress string) float64 {
	minKm, maxKm := crossLocalityMinKm, crossLocalityMaxKm

	senderLoc, senderOk := classifyLocality(senderAddress)
	receiverLoc, receiverOk := classifyLocality(receiverAddress)
	if senderOk && receiverOk && senderLoc == receiverLoc {
		minKm, maxKm = sameLocalityMinKm, sameLocalityMaxKm
	}

	e.mu.Lock()
	sample := e.rnd.Float64()
	e.mu.Unlock()

	km := minKm + sample*(maxKm-minKm)

	// один знак после запятой, как показывается клиенту
	return math.Round(km*10) / 10
}

func classifyLocality(address string) (string, bool) {
	for _, loc := range localities {
		if strings.Contains(strings.ToLower(address), strings.ToLower(loc)) {
			return loc, true
		}
	}
	return "", false
}
