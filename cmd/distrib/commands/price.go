package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func priceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Manage the daily per-kilogram price",
	}
	cmd.AddCommand(priceSetCmd(), priceShowCmd())
	return cmd
}

func priceSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [price-per-kg]",
		Short: "Set today's price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parseAmount(args[0], "price")
			if err != nil {
				return err
			}

			if err := appCtx.pricing.SetTodayPrice(cmd.Context(), price); err != nil {
				return err
			}
			fmt.Printf("Today's price set to %s/kg\n", money(price))
			return nil
		},
	}
}

func priceShowCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show today's price (0 when not set yet)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var price float64
			var err error
			if date == "" {
				price, err = appCtx.pricing.TodayPrice(cmd.Context())
			} else {
				price, err = appCtx.pricing.PriceOn(cmd.Context(), date)
			}
			if err != nil {
				return err
			}
			fmt.Printf("%s/kg\n", money(price))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date to look up (YYYY-MM-DD, default today)")
	return cmd
}
