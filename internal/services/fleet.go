package services

import (
	"context"

	"github.com/fleetdesk/fleetcli/internal/api"
)

// fleetAPI is the slice of the API client the fleet service needs.
type fleetAPI interface {
	ListDrivers(ctx context.Context) ([]api.Driver, error)
	ListVehicles(ctx context.Context) ([]api.Vehicle, error)
	ListRoutes(ctx context.Context) ([]api.Route, error)
}

// FleetService exposes read access to fleet entities. All calls go through
// the authenticated client and therefore exercise the token lifecycle.
type FleetService interface {
	Drivers(ctx context.Context) ([]api.Driver, error)
	Vehicles(ctx context.Context) ([]api.Vehicle, error)
	Routes(ctx context.Context) ([]api.Route, error)
}

type fleetService struct {
	client fleetAPI
}

func NewFleetService(client fleetAPI) FleetService {
	return &fleetService{client: client}
}

func (f *fleetService) Drivers(ctx context.Context) ([]api.Driver, error) {
	return f.client.ListDrivers(ctx)
}

func (f *fleetService) Vehicles(ctx context.Context) ([]api.Vehicle, error) {
	return f.client.ListVehicles(ctx)
}

func (f *fleetService) Routes(ctx context.Context) ([]api.Route, error) {
	return f.client.ListRoutes(ctx)
}
