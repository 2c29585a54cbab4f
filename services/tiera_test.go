package services

import "testing"

func TestCalculateTierAPricing(t *testing.T) {
	tests := []struct {
		name            string
		cfg             TierAConfig
		distance        float64
		expectScanning  float64
		expectMult      float64
		expectClient    float64
		expectTravel    float64
		expectWithTotal float64
	}{
		{
			"other scanning cost at standard margin",
			TierAConfig{ScanningCost: "other", ScanningCostOther: 7000, ModelingCost: 5000, Margin: "standard"},
			40,
			7000, 2.5, 30000, 80, 30080,
		},
		{
			"full day preset at baseline margin",
			TierAConfig{ScanningCost: "fullDay", ModelingCost: 0, Margin: "baseline"},
			0,
			7000, 2.352, 16464, 0, 16464,
		},
		{
			"half day preset at premium margin",
			TierAConfig{ScanningCost: "halfDay", ModelingCost: 2500, Margin: "premium"},
			25,
			3500, 4.0, 24000, 20, 24020,
		},
		{
			"unknown margin falls back to standard",
			TierAConfig{ScanningCost: "other", ScanningCostOther: 1000, ModelingCost: 1000, Margin: "whatever"},
			0,
			1000, 2.5, 5000, 0, 5000,
		},
		{
			"unknown preset falls back to the other value",
			TierAConfig{ScanningCost: "weekend", ScanningCostOther: 2000, ModelingCost: 0, Margin: "standard"},
			0,
			2000, 2.5, 5000, 0, 5000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTierAPricing(tt.cfg, tt.distance)
			if !floatClose(got.ScanningCost, tt.expectScanning) {
				t.Errorf("ScanningCost = %v, want %v", got.ScanningCost, tt.expectScanning)
			}
			if !floatClose(got.MarginMultiplier, tt.expectMult) {
				t.Errorf("MarginMultiplier = %v, want %v", got.MarginMultiplier, tt.expectMult)
			}
			if !floatClose(got.ClientPrice, tt.expectClient) {
				t.Errorf("ClientPrice = %v, want %v", got.ClientPrice, tt.expectClient)
			}
			if !floatClose(got.TravelCost, tt.expectTravel) {
				t.Errorf("TravelCost = %v, want %v", got.TravelCost, tt.expectTravel)
			}
			if !floatClose(got.TotalWithTravel, tt.expectWithTotal) {
				t.Errorf("TotalWithTravel = %v, want %v", got.TotalWithTravel, tt.expectWithTotal)
			}
		})
	}
}

func TestIsTierAProject(t *testing.T) {
	tests := []struct {
		name   string
		areas  []Area
		expect bool
	}{
		{"exactly at threshold", []Area{{BuildingType: "1", SquareFeet: "50000"}}, true},
		{"just under threshold", []Area{{BuildingType: "1", SquareFeet: "49999"}}, false},
		{"landscape acreage counts converted", []Area{{BuildingType: "14", SquareFeet: "2"}}, true}, // 87,120 sqft
		{"raw sqft not rate-floored", []Area{{BuildingType: "1", SquareFeet: "100"}}, false},
		{"no areas", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTierAProject(tt.areas); got != tt.expect {
				t.Errorf("IsTierAProject = %v, want %v", got, tt.expect)
			}
		})
	}
}
