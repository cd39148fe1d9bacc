package inventory

import (
	"context"

	"loanable-inventory/core/libcal"
	"loanable-inventory/feature/inventory/models"
)

// Source provides the two datasets the report is built from.
type Source interface {
	Authenticate(ctx context.Context) error
	FetchItems(ctx context.Context) ([]models.Item, error)
	FetchStatuses(ctx context.Context) ([]models.Status, error)
}

// LibCalSource reads equipment data from the LibCal API.
type LibCalSource struct {
	client *libcal.Client
}

// NewLibCalSource wraps a LibCal client.
func NewLibCalSource(client *libcal.Client) *LibCalSource {
	return &LibCalSource{client: client}
}

func (s *LibCalSource) Authenticate(ctx context.Context) error {
	return s.client.Authenticate(ctx)
}

func (s *LibCalSource) FetchItems(ctx context.Context) ([]models.Item, error) {
	return libcal.FetchAll[models.Item](ctx, s.client, s.client.ItemsPath())
}

func (s *LibCalSource) FetchStatuses(ctx context.Context) ([]models.Status, error) {
	return libcal.FetchAll[models.Status](ctx, s.client, s.client.StatusesPath())
}
