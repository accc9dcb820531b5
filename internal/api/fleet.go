package api

import (
	"context"
	"net/http"
)

// Driver is a fleet driver as returned by the backend.
type Driver struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	License  string `json:"license"`
	Status   string `json:"status"`
	TenantID string `json:"tenantId"`
}

// Vehicle is a fleet vehicle as returned by the backend.
type Vehicle struct {
	ID       string `json:"id"`
	Plate    string `json:"plate"`
	Model    string `json:"model"`
	Status   string `json:"status"`
	DriverID string `json:"driverId"`
}

// Route is a transport route as returned by the backend.
type Route struct {
	ID          string `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DriverID    string `json:"driverId"`
	VehicleID   string `json:"vehicleId"`
	Status      string `json:"status"`
}

func (c *Client) ListDrivers(ctx context.Context) ([]Driver, error) {
	var out []Driver
	if err := c.do(ctx, http.MethodGet, "/drivers", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	var out []Vehicle
	if err := c.do(ctx, http.MethodGet, "/vehicles", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListRoutes(ctx context.Context) ([]Route, error) {
	var out []Route
	if err := c.do(ctx, http.MethodGet, "/routes", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}
