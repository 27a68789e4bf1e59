package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func payCmd() *cobra.Command {
	var method, note string
	var distributionID int64

	cmd := &cobra.Command{
		Use:   "pay [client-id] [amount]",
		Short: "Record a payment, optionally applied to one distribution",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := parseID(args[0], "client id")
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1], "amount")
			if err != nil {
				return err
			}

			payment, err := appCtx.payments.Record(cmd.Context(), clientID, amount, method, note, distributionID)
			if err != nil {
				return err
			}

			fmt.Printf("Payment %d recorded: %s via %s\n", payment.ID, money(payment.Amount), payment.Method)
			if payment.DistributionID != 0 {
				dist, err := appCtx.store.GetDistribution(cmd.Context(), payment.DistributionID)
				if err != nil {
					return err
				}
				fmt.Printf("Distribution %d remaining: %s\n", dist.ID, money(dist.RemainingAmount))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "", "payment method (default cash)")
	cmd.Flags().StringVar(&note, "note", "", "free-text description")
	cmd.Flags().Int64Var(&distributionID, "distribution", 0, "distribution to apply the payment to")
	return cmd
}

func paymentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payments [client-id]",
		Short: "List a client's payments, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := parseID(args[0], "client id")
			if err != nil {
				return err
			}

			payments, err := appCtx.payments.ListByClient(cmd.Context(), clientID)
			if err != nil {
				return err
			}
			if len(payments) == 0 {
				fmt.Println("No payments")
				return nil
			}

			rows := [][]string{{"ID", "DATE", "AMOUNT", "METHOD", "DISTRIBUTION", "NOTE"}}
			for _, p := range payments {
				dist := "-"
				if p.DistributionID != 0 {
					dist = fmt.Sprint(p.DistributionID)
				}
				rows = append(rows, []string{
					fmt.Sprint(p.ID), p.Date, money(p.Amount), p.Method, dist, p.Description,
				})
			}
			table(rows)
			return nil
		},
	}
}

func pendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List clients with outstanding balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			balances, err := appCtx.payments.PendingBalances(cmd.Context())
			if err != nil {
				return err
			}
			if len(balances) == 0 {
				fmt.Println("No pending balances")
				return nil
			}

			rows := [][]string{{"CLIENT", "PHONE", "PENDING"}}
			var total float64
			for _, b := range balances {
				rows = append(rows, []string{b.ClientName, b.Phone, money(b.Amount)})
				total += b.Amount
			}
			rows = append(rows, []string{"TOTAL", "", money(total)})
			table(rows)
			return nil
		},
	}
}
