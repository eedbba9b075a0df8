package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestEstimateCost(t *testing.T) {
	testCases := []struct {
		TestName string
		Service  string
		Quantity int
		Expected decimal.Decimal
	}{
		{
			TestName: "Wash & Fold, 5 kg #1",
			Service:  ServiceWashAndFold,
			Quantity: 5,
			Expected: decimal.NewFromInt(750),
		},
		{
			TestName: "Dry Cleaning, 2 clothes #2",
			Service:  ServiceDryCleaning,
			Quantity: 2,
			Expected: decimal.NewFromInt(500),
		},
		{
			TestName: "Ironing, 10 clothes #3",
			Service:  ServiceIroning,
			Quantity: 10,
			Expected: decimal.NewFromInt(300),
		},
		{
			TestName: "Special Care has no fixed price #4",
			Service:  ServiceSpecialCare,
			Quantity: 7,
			Expected: decimal.Zero,
		},
		{
			TestName: "Zero quantity #5",
			Service:  ServiceWashAndFold,
			Quantity: 0,
			Expected: decimal.Zero,
		},
		{
			TestName: "Negative quantity #6",
			Service:  ServiceDryCleaning,
			Quantity: -3,
			Expected: decimal.Zero,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			info, ok := FindService(tc.Service)
			if !ok {
				t.Fatalf("Expected service '%s' in catalog", tc.Service)
			}
			cost := EstimateCost(info, tc.Quantity)
			if !cost.Equal(tc.Expected) {
				t.Errorf("Expected cost %s, got %s", tc.Expected, cost)
			}
		})
	}
}

func TestFindService(t *testing.T) {
	if _, ok := FindService("Shoe Repair"); ok {
		t.Errorf("Expected unknown service to be rejected")
	}
	for _, s := range Catalog {
		if _, ok := FindService(s.Name); !ok {
			t.Errorf("Expected service '%s' to be found", s.Name)
		}
	}
}

func TestCheckTimeSlot(t *testing.T) {
	for _, slot := range TimeSlots {
		if !CheckTimeSlot(slot) {
			t.Errorf("Expected slot '%s' to be valid", slot)
		}
	}
	if CheckTimeSlot("8:00 PM - 10:00 PM") {
		t.Errorf("Expected slot outside the fixed list to be rejected")
	}
}
