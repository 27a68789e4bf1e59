package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func clientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage the client roster",
	}
	cmd.AddCommand(
		clientAddCmd(), clientListCmd(), clientShowCmd(),
		clientUpdateCmd(), clientRemoveCmd(), clientBalanceCmd(),
	)
	return cmd
}

func clientAddCmd() *cobra.Command {
	var address, phone string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := appCtx.clients.Add(cmd.Context(), args[0], address, phone)
			if err != nil {
				return err
			}
			fmt.Printf("Client %d added: %s\n", client.ID, client.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "delivery address")
	cmd.Flags().StringVar(&phone, "phone", "", "contact number")
	return cmd
}

func clientListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active clients with their outstanding balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := appCtx.clients.ListActive(cmd.Context())
			if err != nil {
				return err
			}
			if len(clients) == 0 {
				fmt.Println("No clients")
				return nil
			}

			rows := [][]string{{"ID", "NAME", "ADDRESS", "PHONE", "BALANCE"}}
			for _, c := range clients {
				balance, err := appCtx.clients.OutstandingBalance(cmd.Context(), c.ID)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					fmt.Sprint(c.ID), c.Name, c.Address, c.Phone, money(balance),
				})
			}
			table(rows)
			return nil
		},
	}
}

func clientShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "client id")
			if err != nil {
				return err
			}

			client, err := appCtx.clients.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			balance, err := appCtx.clients.OutstandingBalance(cmd.Context(), id)
			if err != nil {
				return err
			}

			status := "active"
			if !client.IsActive {
				status = "inactive"
			}
			fmt.Printf("Client %d: %s (%s)\n", client.ID, client.Name, status)
			fmt.Printf("  Address: %s\n", client.Address)
			fmt.Printf("  Phone:   %s\n", client.Phone)
			fmt.Printf("  Since:   %s\n", client.CreatedDate)
			fmt.Printf("  Balance: %s\n", money(balance))
			return nil
		},
	}
}

func clientUpdateCmd() *cobra.Command {
	var address, phone string

	cmd := &cobra.Command{
		Use:   "update [id] [name]",
		Short: "Update a client's name, address and phone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "client id")
			if err != nil {
				return err
			}

			if err := appCtx.clients.Update(cmd.Context(), id, args[1], address, phone); err != nil {
				return err
			}
			fmt.Printf("Client %d updated\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "delivery address")
	cmd.Flags().StringVar(&phone, "phone", "", "contact number")
	return cmd
}

func clientRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Deactivate a client (history is kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "client id")
			if err != nil {
				return err
			}

			if err := appCtx.clients.Deactivate(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Client %d deactivated\n", id)
			return nil
		},
	}
}

func clientBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance [id]",
		Short: "Show a client's outstanding balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "client id")
			if err != nil {
				return err
			}

			balance, err := appCtx.clients.OutstandingBalance(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Println(money(balance))
			return nil
		},
	}
}
