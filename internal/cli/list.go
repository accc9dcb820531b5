package cli

import (
	"context"
	"fmt"
	"log"
)

// Drivers lists the fleet's drivers.
func (a *App) Drivers(ctx context.Context) error {
	drivers, err := a.fleet.Drivers(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(drivers) == 0 {
		fmt.Println("No drivers")
		return nil
	}
	for _, d := range drivers {
		fmt.Printf("%s  %-20s  %-12s  %s\n", d.ID, d.Name, d.License, d.Status)
	}
	return nil
}

// Vehicles lists the fleet's vehicles.
func (a *App) Vehicles(ctx context.Context) error {
	vehicles, err := a.fleet.Vehicles(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(vehicles) == 0 {
		fmt.Println("No vehicles")
		return nil
	}
	for _, v := range vehicles {
		fmt.Printf("%s  %-10s  %-20s  %s\n", v.ID, v.Plate, v.Model, v.Status)
	}
	return nil
}

// Routes lists the fleet's routes.
func (a *App) Routes(ctx context.Context) error {
	routes, err := a.fleet.Routes(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(routes) == 0 {
		fmt.Println("No routes")
		return nil
	}
	for _, r := range routes {
		fmt.Printf("%s  %s -> %s  %s\n", r.ID, r.Origin, r.Destination, r.Status)
	}
	return nil
}
