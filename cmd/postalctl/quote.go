package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"storefront/internal/app/domains/apimodel/response"
	"storefront/internal/app/domains/entity/etshipping"
	"storefront/internal/app/domains/services/svshipping"
)

var (
	quoteWeight  float64
	quoteCountry string
)

// quoteCmd prices a shipment locally, without carrier or cache
var quoteCmd = &cobra.Command{
	Use:   "quote <zip>",
	Short: "Price a shipment with the configured formula",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuote,
}

func init() {
	quoteCmd.Flags().Float64Var(&quoteWeight, "weight", 1, "parcel weight in pounds")
	quoteCmd.Flags().StringVar(&quoteCountry, "country", "US", "destination country")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	svc, err := svshipping.Setup(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	q, err := svc.Quote(cmd.Context(), etshipping.QuoteRequest{
		DestinationPostalCode: args[0],
		DestinationCountry:    quoteCountry,
		WeightLbs:             &quoteWeight,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(response.FromQuote(q))
}
