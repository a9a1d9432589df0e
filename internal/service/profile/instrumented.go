package profile

import (
	"context"

	"github.com/janisto/dashboard-api/internal/platform/metrics"
)

// Sizer is implemented by stores that can report their profile count.
type Sizer interface {
	Len() int
}

type instrumented struct {
	next Service
}

// Instrumented wraps svc so every operation is counted by outcome. When svc implements
// Sizer, the stored-profiles gauge is refreshed after each mutation.
func Instrumented(svc Service) Service {
	i := &instrumented{next: svc}
	i.refreshGauge()
	return i
}

func (i *instrumented) List(ctx context.Context) ([]Profile, error) {
	out, err := i.next.List(ctx)
	i.record("list", err)
	return out, err
}

func (i *instrumented) Create(ctx context.Context, params CreateParams) (*Profile, error) {
	out, err := i.next.Create(ctx, params)
	i.record("create", err)
	return out, err
}

func (i *instrumented) Update(ctx context.Context, id string, params UpdateParams) (*Profile, error) {
	out, err := i.next.Update(ctx, id, params)
	i.record("update", err)
	return out, err
}

func (i *instrumented) Delete(ctx context.Context, id string) error {
	err := i.next.Delete(ctx, id)
	i.record("delete", err)
	return err
}

func (i *instrumented) record(op string, err error) {
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultFailure
	}
	metrics.RecordProfileOperation(op, result)
	if op != "list" {
		i.refreshGauge()
	}
}

func (i *instrumented) refreshGauge() {
	if s, ok := i.next.(Sizer); ok {
		metrics.SetProfilesStored(s.Len())
	}
}
