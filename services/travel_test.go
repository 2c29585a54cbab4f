package services

import "testing"

func TestCalculateTravelCost(t *testing.T) {
	tests := []struct {
		name       string
		distance   float64
		dispatch   string
		totalSqft  float64
		customCost float64
		expect     float64
	}{
		{"brooklyn large project waives base fee", 30, "BROOKLYN", 60000, 0, 40},
		{"brooklyn mid project", 35, "BROOKLYN", 25000, 0, 360},
		{"brooklyn small project", 25, "BROOKLYN", 8000, 0, 170},
		{"brooklyn inside free radius pays base fee only", 15, "Brooklyn", 8000, 0, 150},
		{"brooklyn zero distance still pays base fee", 0, "Brooklyn", 8000, 0, 150},
		{"brooklyn matched as substring", 40, "Brooklyn Navy Yard", 25000, 0, 380},
		{"other hub flat per mile", 80, "WOODSTOCK", 25000, 0, 240},
		{"other hub short distance still billed", 10, "albany", 250000, 0, 30},
		{"custom cost overrides computation", 80, "WOODSTOCK", 25000, 500, 500},
		{"zero distance no custom", 0, "WOODSTOCK", 25000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTravelCost(tt.distance, tt.dispatch, tt.totalSqft, tt.customCost)
			if !floatClose(got, tt.expect) {
				t.Errorf("CalculateTravelCost(%v, %q, %v, %v) = %v, want %v",
					tt.distance, tt.dispatch, tt.totalSqft, tt.customCost, got, tt.expect)
			}
		})
	}
}

func TestCalculateTierATravelCost(t *testing.T) {
	tests := []struct {
		distance float64
		expect   float64
	}{
		{0, 0},
		{20, 0},
		{40, 80},
		{100, 320},
	}

	for _, tt := range tests {
		if got := CalculateTierATravelCost(tt.distance); !floatClose(got, tt.expect) {
			t.Errorf("CalculateTierATravelCost(%v) = %v, want %v", tt.distance, got, tt.expect)
		}
	}
}

func TestProjectTotalSquareFeet(t *testing.T) {
	tests := []struct {
		name   string
		areas  []Area
		expect float64
	}{
		{"no areas", nil, 0},
		{
			"standard areas sum raw sqft without the rate floor",
			[]Area{
				{BuildingType: "1", SquareFeet: "100"},
				{BuildingType: "5", SquareFeet: "25000"},
			},
			25100,
		},
		{
			"landscape acres convert at 43560",
			[]Area{{BuildingType: "14", SquareFeet: "5"}},
			217800,
		},
		{
			"mixed standard and landscape",
			[]Area{
				{BuildingType: "1", SquareFeet: "10000"},
				{BuildingType: "15", SquareFeet: "1"},
			},
			53560,
		},
		{
			"malformed sqft contributes zero",
			[]Area{{BuildingType: "1", SquareFeet: "n/a"}},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProjectTotalSquareFeet(tt.areas); !floatClose(got, tt.expect) {
				t.Errorf("ProjectTotalSquareFeet = %v, want %v", got, tt.expect)
			}
		})
	}
}
