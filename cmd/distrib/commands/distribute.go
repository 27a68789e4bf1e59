package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func distributeCmd() *cobra.Command {
	var paid float64

	cmd := &cobra.Command{
		Use:   "distribute [client-id] [quantity-kg]",
		Short: "Record a delivery at today's price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := parseID(args[0], "client id")
			if err != nil {
				return err
			}
			quantity, err := parseAmount(args[1], "quantity")
			if err != nil {
				return err
			}

			dist, err := appCtx.distributions.Record(cmd.Context(), clientID, quantity, paid)
			if err != nil {
				return err
			}

			fmt.Printf("Distribution %d recorded: %s kg x %s = %s (paid %s, remaining %s)\n",
				dist.ID, money(dist.QuantityKg), money(dist.PricePerKg),
				money(dist.TotalAmount), money(dist.PaidAmount), money(dist.RemainingAmount))
			return nil
		},
	}

	cmd.Flags().Float64Var(&paid, "paid", 0, "amount paid on delivery")
	return cmd
}

func distributionsCmd() *cobra.Command {
	var date string
	var clientID int64

	cmd := &cobra.Command{
		Use:   "distributions",
		Short: "List distributions for a day, or a client's full history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if clientID != 0 {
				return listClientDistributions(cmd, clientID)
			}
			return listDailyDistributions(cmd, date)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day to list (YYYY-MM-DD, default today)")
	cmd.Flags().Int64Var(&clientID, "client", 0, "list one client's history instead")
	return cmd
}

func listDailyDistributions(cmd *cobra.Command, date string) error {
	dists, err := appCtx.distributions.ListDaily(cmd.Context(), date)
	if err != nil {
		return err
	}
	if len(dists) == 0 {
		fmt.Println("No distributions")
		return nil
	}

	rows := [][]string{{"ID", "CLIENT", "KG", "PRICE", "TOTAL", "PAID", "REMAINING", "DATE"}}
	for _, d := range dists {
		rows = append(rows, []string{
			fmt.Sprint(d.ID), d.ClientName,
			money(d.QuantityKg), money(d.PricePerKg), money(d.TotalAmount),
			money(d.PaidAmount), money(d.RemainingAmount), d.Date,
		})
	}
	table(rows)
	return nil
}

func listClientDistributions(cmd *cobra.Command, clientID int64) error {
	dists, err := appCtx.distributions.ListByClient(cmd.Context(), clientID)
	if err != nil {
		return err
	}
	if len(dists) == 0 {
		fmt.Println("No distributions")
		return nil
	}

	rows := [][]string{{"ID", "DATE", "KG", "PRICE", "TOTAL", "PAID", "REMAINING"}}
	for _, d := range dists {
		rows = append(rows, []string{
			fmt.Sprint(d.ID), d.Date,
			money(d.QuantityKg), money(d.PricePerKg), money(d.TotalAmount),
			money(d.PaidAmount), money(d.RemainingAmount),
		})
	}
	table(rows)
	return nil
}
