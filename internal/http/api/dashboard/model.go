package dashboard

// Stat is a headline card value.
type Stat struct {
	Value      int     `json:"value"      example:"2129430"`
	Change     float64 `json:"change"     doc:"Change in percent" example:"2.5"`
	IsPositive bool    `json:"isPositive" example:"true"`
}

// Metrics is the headline card set.
type Metrics struct {
	TotalRevenues     Stat `json:"totalRevenues"`
	TotalTransactions Stat `json:"totalTransactions"`
	TotalLikes        Stat `json:"totalLikes"`
	TotalUsers        Stat `json:"totalUsers"`
}

// Activity is one week of visits. The capitalized keys are the chart series names.
type Activity struct {
	Name  string `json:"name"  example:"Week 1"`
	Guest int    `json:"Guest" example:"400"`
	User  int    `json:"User"  example:"240"`
}

// Product is a top-product share.
type Product struct {
	Name  string `json:"name"  example:"Basic Tees"`
	Value int    `json:"value" doc:"Share in percent" example:"55"`
	Color string `json:"color" example:"#3b82f6"`
}

// Tractor is one fleet vehicle.
type Tractor struct {
	ID         string  `json:"id"         example:"TR-001"`
	Name       string  `json:"name"       example:"Green Thunder"`
	Location   string  `json:"location"   example:"Punjab, India"`
	Status     string  `json:"status"     enum:"active,charging,maintenance"`
	Battery    int     `json:"battery"    doc:"Charge in percent" example:"87"`
	Farmer     string  `json:"farmer"     example:"Rajesh Kumar"`
	HoursToday float64 `json:"hoursToday" example:"6.5"`
	Efficiency int     `json:"efficiency" doc:"Efficiency in percent" example:"94"`
}

// FleetSummary aggregates the fleet.
type FleetSummary struct {
	Total           int     `json:"total"           example:"4"`
	Active          int     `json:"active"          example:"2"`
	AverageBattery  int     `json:"averageBattery"  example:"52"`
	TotalHoursToday float64 `json:"totalHoursToday" example:"16.5"`
}

// Fleet is the fleet listing.
type Fleet struct {
	Tractors []Tractor    `json:"tractors"`
	Summary  FleetSummary `json:"summary"`
}

// ImpactMetric is a preformatted sustainability headline.
type ImpactMetric struct {
	Title  string `json:"title"  example:"Carbon Credits Earned"`
	Value  string `json:"value"  example:"1,247"`
	Unit   string `json:"unit"   example:"CO₂ tons"`
	Change string `json:"change" example:"+18.2%"`
}

// CarbonMonth is one month of the carbon chart.
type CarbonMonth struct {
	Month       string `json:"month"       example:"Jan"`
	Saved       int    `json:"saved"       example:"85"`
	Target      int    `json:"target"      example:"100"`
	Traditional int    `json:"traditional" example:"450"`
}

// Sustainability is the sustainability widget payload.
type Sustainability struct {
	Metrics []ImpactMetric `json:"metrics"`
	Carbon  []CarbonMonth  `json:"carbon"`
}
