// Package dashboard serves the fixed demo data behind the dashboard widgets. Every
// function returns a fresh value, so callers may modify the result.
package dashboard

import "math"

// Stat is a headline figure with its period-over-period change in percent.
type Stat struct {
	Value      int
	Change     float64
	IsPositive bool
}

// Metrics groups the four headline cards.
type Metrics struct {
	TotalRevenues     Stat
	TotalTransactions Stat
	TotalLikes        Stat
	TotalUsers        Stat
}

// Activity is one week of guest and registered-user visits.
type Activity struct {
	Name  string
	Guest int
	User  int
}

// Product is a top-product slice with its share and chart color.
type Product struct {
	Name  string
	Value int
	Color string
}

// Tractor statuses.
const (
	StatusActive      = "active"
	StatusCharging    = "charging"
	StatusMaintenance = "maintenance"
)

// Tractor is one vehicle of the demo e-tractor fleet.
type Tractor struct {
	ID         string
	Name       string
	Location   string
	Status     string
	Battery    int
	Farmer     string
	HoursToday float64
	Efficiency int
}

// FleetSummary aggregates the fleet.
type FleetSummary struct {
	Total           int
	Active          int
	AverageBattery  int
	TotalHoursToday float64
}

// Fleet is the fleet listing with its summary.
type Fleet struct {
	Tractors []Tractor
	Summary  FleetSummary
}

// CarbonMonth compares CO2 saved against target and a conventional baseline.
type CarbonMonth struct {
	Month       string
	Saved       int
	Target      int
	Traditional int
}

// ImpactMetric is a preformatted sustainability headline.
type ImpactMetric struct {
	Title  string
	Value  string
	Unit   string
	Change string
}

// Sustainability is the payload of the sustainability widget.
type Sustainability struct {
	Metrics []ImpactMetric
	Carbon  []CarbonMonth
}

// GetMetrics returns the headline cards.
func GetMetrics() Metrics {
	return Metrics{
		TotalRevenues:     Stat{Value: 2129430, Change: 2.5, IsPositive: true},
		TotalTransactions: Stat{Value: 1520, Change: 1.7, IsPositive: true},
		TotalLikes:        Stat{Value: 9721, Change: 1.4, IsPositive: true},
		TotalUsers:        Stat{Value: 9721, Change: 4.2, IsPositive: true},
	}
}

// GetActivities returns four weeks of activity.
func GetActivities() []Activity {
	return []Activity{
		{Name: "Week 1", Guest: 400, User: 240},
		{Name: "Week 2", Guest: 300, User: 139},
		{Name: "Week 3", Guest: 200, User: 980},
		{Name: "Week 4", Guest: 278, User: 390},
	}
}

// GetProducts returns the top products by share.
func GetProducts() []Product {
	return []Product{
		{Name: "Basic Tees", Value: 55, Color: "#3b82f6"},
		{Name: "Custom Short Pants", Value: 31, Color: "#10b981"},
		{Name: "Super Hoodies", Value: 14, Color: "#f59e0b"},
	}
}

// GetFleet returns the tractors and their computed summary.
func GetFleet() Fleet {
	tractors := []Tractor{
		{ID: "TR-001", Name: "Green Thunder", Location: "Punjab, India", Status: StatusActive, Battery: 87, Farmer: "Rajesh Kumar", HoursToday: 6.5, Efficiency: 94},
		{ID: "TR-002", Name: "Eco Warrior", Location: "Haryana, India", Status: StatusCharging, Battery: 34, Farmer: "Priya Sharma", HoursToday: 4.2, Efficiency: 89},
		{ID: "TR-003", Name: "Field Master", Location: "Uttar Pradesh", Status: StatusMaintenance, Battery: 12, Farmer: "Amit Singh", HoursToday: 0, Efficiency: 0},
		{ID: "TR-004", Name: "Harvest Pro", Location: "Rajasthan, India", Status: StatusActive, Battery: 76, Farmer: "Sunita Devi", HoursToday: 5.8, Efficiency: 96},
	}
	return Fleet{Tractors: tractors, Summary: Summarize(tractors)}
}

// Summarize computes fleet totals. The average battery is rounded to a whole percent
// and hours to one decimal.
func Summarize(tractors []Tractor) FleetSummary {
	s := FleetSummary{Total: len(tractors)}
	if len(tractors) == 0 {
		return s
	}
	battery := 0
	for _, t := range tractors {
		if t.Status == StatusActive {
			s.Active++
		}
		battery += t.Battery
		s.TotalHoursToday += t.HoursToday
	}
	s.AverageBattery = int(math.Round(float64(battery) / float64(len(tractors))))
	s.TotalHoursToday = math.Round(s.TotalHoursToday*10) / 10
	return s
}

// GetSustainability returns the carbon series and impact headlines.
func GetSustainability() Sustainability {
	return Sustainability{
		Metrics: []ImpactMetric{
			{Title: "Carbon Credits Earned", Value: "1,247", Unit: "CO₂ tons", Change: "+18.2%"},
			{Title: "Fuel Savings", Value: "₹24.8L", Unit: "this month", Change: "+12.5%"},
			{Title: "Green Score", Value: "94.2", Unit: "/100", Change: "+5.1%"},
		},
		Carbon: []CarbonMonth{
			{Month: "Jan", Saved: 85, Target: 100, Traditional: 450},
			{Month: "Feb", Saved: 120, Target: 120, Traditional: 480},
			{Month: "Mar", Saved: 165, Target: 140, Traditional: 520},
			{Month: "Apr", Saved: 210, Target: 160, Traditional: 580},
			{Month: "May", Saved: 280, Target: 180, Traditional: 640},
			{Month: "Jun", Saved: 350, Target: 200, Traditional: 720},
		},
	}
}
