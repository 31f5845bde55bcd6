package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"storefront/internal/app/domains/entity/etshipping"
	"storefront/internal/app/domains/modules/mdshipping"
	"storefront/internal/app/infra/postal"
)

// lookupCmd prints a postal point and its distance from the origin
var lookupCmd = &cobra.Command{
	Use:   "lookup <zip>...",
	Short: "Print the reference point of postal codes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLookup,
}

type lookupResult struct {
	Code     string  `json:"code"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	Lat      float64 `json:"latitude"`
	Lon      float64 `json:"longitude"`
	Miles    float64 `json:"distanceMiles"`
	Zone     int     `json:"zone"`
	Estimate bool    `json:"estimated,omitempty"`
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	table, err := postal.Load(cmd.Context(), cfg.Postal, log)
	if err != nil {
		return err
	}
	estimator, err := mdshipping.NewDistanceEstimator(table, cfg.Shipping.OriginZip)
	if err != nil {
		return err
	}
	zones := etshipping.DefaultZoneTable()

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	for _, zip := range args {
		est, err := estimator.Estimate(zip)
		if err != nil {
			// unknown codes fall back to the ZIP area centroid
			est, err = estimator.EstimateByPrefix(zip)
			if err != nil {
				return fmt.Errorf("%s: %w", zip, err)
			}
		}
		if err := enc.Encode(lookupResult{
			Code:     est.Destination.Code,
			City:     est.Destination.City,
			State:    est.Destination.State,
			Lat:      est.Destination.Latitude,
			Lon:      est.Destination.Longitude,
			Miles:    est.Miles,
			Zone:     zones.Lookup(est.Miles).Zone,
			Estimate: est.Estimated,
		}); err != nil {
			return err
		}
	}
	return nil
}
