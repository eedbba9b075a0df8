package models

import "github.com/shopspring/decimal"

// Услуги прачечной
const (
	ServiceWashAndFold = "Wash & Fold"
	ServiceDryCleaning = "Dry Cleaning"
	ServiceIroning     = "Ironing"
	ServiceSpecialCare = "Special Care"
)

// ServiceInfo - позиция каталога услуг. Нулевая цена означает
// индивидуальный расчёт после приёмки ("Custom Quote").
type ServiceInfo struct {
	Name      string
	UnitPrice decimal.Decimal
	Unit      string
}

// Catalog - фиксированный прайс услуг
var Catalog = []ServiceInfo{
	{Name: ServiceWashAndFold, UnitPrice: decimal.NewFromInt(150), Unit: "kg"},
	{Name: ServiceDryCleaning, UnitPrice: decimal.NewFromInt(250), Unit: "clothe"},
	{Name: ServiceIroning, UnitPrice: decimal.NewFromInt(30), Unit: "clothe"},
	{Name: ServiceSpecialCare, UnitPrice: decimal.Zero, Unit: "item"},
}

// TimeSlots - фиксированные двухчасовые окна забора
var TimeSlots = []string{
	"8:00 AM - 10:00 AM",
	"10:00 AM - 12:00 PM",
	"12:00 PM - 2:00 PM",
	"2:00 PM - 4:00 PM",
	"4:00 PM - 6:00 PM",
	"6:00 PM - 8:00 PM",
}

// FindService - поиск услуги в каталоге по имени
func FindService(name string) (ServiceInfo, bool) {
	for _, s := range Catalog {
		if s.Name == name {
			return s, true
		}
	}
	return ServiceInfo{}, false
}

// CheckTimeSlot проверяет, что окно забора входит в фиксированный список
func CheckTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// EstimateCost - оценка стоимости: цена за единицу * количество.
// Для услуг без фиксированной цены и при нулевом количестве возвращает ноль.
func EstimateCost(service ServiceInfo, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return service.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
