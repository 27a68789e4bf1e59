package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abid327/distrib/internal/models"
)

func reportCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Per-client distribution summary over a period (default last 30 days)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if to == "" {
				to = models.Today()
			}
			if from == "" {
				from = time.Now().AddDate(0, 0, -30).Format(models.DateFormat)
			}

			summaries, err := appCtx.distributions.SummarizeByClient(cmd.Context(), from, to)
			if err != nil {
				return err
			}

			fmt.Printf("Distributions %s to %s\n", from, to)
			if len(summaries) == 0 {
				fmt.Println("No distributions in period")
				return nil
			}

			rows := [][]string{{"CLIENT", "KG", "AMOUNT", "PAID", "REMAINING"}}
			var kg, amount, paid, remaining float64
			for _, s := range summaries {
				rows = append(rows, []string{
					s.ClientName, money(s.TotalKg), money(s.TotalAmount),
					money(s.TotalPaid), money(s.TotalRemaining),
				})
				kg += s.TotalKg
				amount += s.TotalAmount
				paid += s.TotalPaid
				remaining += s.TotalRemaining
			}
			rows = append(rows, []string{"TOTAL", money(kg), money(amount), money(paid), money(remaining)})
			table(rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	return cmd
}
