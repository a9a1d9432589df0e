package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	dashboardsvc "github.com/janisto/dashboard-api/internal/service/dashboard"
)

// Register registers the read-only dashboard endpoints.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-metrics",
		Method:      http.MethodGet,
		Path:        "/api/metrics",
		Summary:     "Get headline metrics",
		Tags:        []string{"Dashboard"},
	}, func(ctx context.Context, _ *struct{}) (*MetricsOutput, error) {
		return &MetricsOutput{Body: toHTTPMetrics(dashboardsvc.GetMetrics())}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-activities",
		Method:      http.MethodGet,
		Path:        "/api/activities",
		Summary:     "Get weekly activity",
		Tags:        []string{"Dashboard"},
	}, func(ctx context.Context, _ *struct{}) (*ActivitiesOutput, error) {
		src := dashboardsvc.GetActivities()
		out := make([]Activity, 0, len(src))
		for _, a := range src {
			out = append(out, Activity{Name: a.Name, Guest: a.Guest, User: a.User})
		}
		return &ActivitiesOutput{Body: out}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/api/products",
		Summary:     "Get top products",
		Tags:        []string{"Dashboard"},
	}, func(ctx context.Context, _ *struct{}) (*ProductsOutput, error) {
		src := dashboardsvc.GetProducts()
		out := make([]Product, 0, len(src))
		for _, p := range src {
			out = append(out, Product{Name: p.Name, Value: p.Value, Color: p.Color})
		}
		return &ProductsOutput{Body: out}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-fleet",
		Method:      http.MethodGet,
		Path:        "/api/fleet",
		Summary:     "Get e-tractor fleet",
		Description: "Lists the demo tractors with a computed summary.",
		Tags:        []string{"Dashboard"},
	}, func(ctx context.Context, _ *struct{}) (*FleetOutput, error) {
		return &FleetOutput{Body: toHTTPFleet(dashboardsvc.GetFleet())}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-sustainability",
		Method:      http.MethodGet,
		Path:        "/api/sustainability",
		Summary:     "Get sustainability impact",
		Tags:        []string{"Dashboard"},
	}, func(ctx context.Context, _ *struct{}) (*SustainabilityOutput, error) {
		return &SustainabilityOutput{Body: toHTTPSustainability(dashboardsvc.GetSustainability())}, nil
	})
}

func toHTTPStat(s dashboardsvc.Stat) Stat {
	return Stat{Value: s.Value, Change: s.Change, IsPositive: s.IsPositive}
}

func toHTTPMetrics(m dashboardsvc.Metrics) Metrics {
	return Metrics{
		TotalRevenues:     toHTTPStat(m.TotalRevenues),
		TotalTransactions: toHTTPStat(m.TotalTransactions),
		TotalLikes:        toHTTPStat(m.TotalLikes),
		TotalUsers:        toHTTPStat(m.TotalUsers),
	}
}

func toHTTPFleet(f dashboardsvc.Fleet) Fleet {
	tractors := make([]Tractor, 0, len(f.Tractors))
	for _, t := range f.Tractors {
		tractors = append(tractors, Tractor{
			ID:         t.ID,
			Name:       t.Name,
			Location:   t.Location,
			Status:     t.Status,
			Battery:    t.Battery,
			Farmer:     t.Farmer,
			HoursToday: t.HoursToday,
			Efficiency: t.Efficiency,
		})
	}
	return Fleet{
		Tractors: tractors,
		Summary: FleetSummary{
			Total:           f.Summary.Total,
			Active:          f.Summary.Active,
			AverageBattery:  f.Summary.AverageBattery,
			TotalHoursToday: f.Summary.TotalHoursToday,
		},
	}
}

func toHTTPSustainability(s dashboardsvc.Sustainability) Sustainability {
	out := Sustainability{
		Metrics: make([]ImpactMetric, 0, len(s.Metrics)),
		Carbon:  make([]CarbonMonth, 0, len(s.Carbon)),
	}
	for _, m := range s.Metrics {
		out.Metrics = append(out.Metrics, ImpactMetric{Title: m.Title, Value: m.Value, Unit: m.Unit, Change: m.Change})
	}
	for _, c := range s.Carbon {
		out.Carbon = append(out.Carbon, CarbonMonth{Month: c.Month, Saved: c.Saved, Target: c.Target, Traditional: c.Traditional})
	}
	return out
}
