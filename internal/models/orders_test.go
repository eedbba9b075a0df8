package models

import "testing"

func TestCheckOrderID(t *testing.T) {
	testCases := []struct {
		TestName string
		OrderID  string
		Expected bool
	}{
		{TestName: "Valid id #1", OrderID: "AB1234", Expected: true},
		{TestName: "Lowercase letters #2", OrderID: "ab1234", Expected: false},
		{TestName: "Too short #3", OrderID: "A1234", Expected: false},
		{TestName: "Too long #4", OrderID: "AB12345", Expected: false},
		{TestName: "Letters in number part #5", OrderID: "ABCDEF", Expected: false},
		{TestName: "Digits in letter part #6", OrderID: "121234", Expected: false},
		{TestName: "Empty #7", OrderID: "", Expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			if got := CheckOrderID(tc.OrderID); got != tc.Expected {
				t.Errorf("CheckOrderID(%q): expected %v, got %v", tc.OrderID, tc.Expected, got)
			}
		})
	}
}

func TestCheckStatus(t *testing.T) {
	for _, status := range []string{OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled} {
		if !CheckStatus(status) {
			t.Errorf("Expected status '%s' to be valid", status)
		}
	}
	for _, status := range []string{"", "pending", "Done", "In Transit"} {
		if CheckStatus(status) {
			t.Errorf("Expected status '%s' to be rejected", status)
		}
	}
}
