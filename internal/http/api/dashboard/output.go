package dashboard

// MetricsOutput for GET /api/metrics
type MetricsOutput struct {
	Body Metrics
}

// ActivitiesOutput for GET /api/activities
type ActivitiesOutput struct {
	Body []Activity
}

// ProductsOutput for GET /api/products
type ProductsOutput struct {
	Body []Product
}

// FleetOutput for GET /api/fleet
type FleetOutput struct {
	Body Fleet
}

// SustainabilityOutput for GET /api/sustainability
type SustainabilityOutput struct {
	Body Sustainability
}
