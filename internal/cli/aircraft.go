package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAircraftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aircraft",
		Short: "Aircraft management commands",
	}

	cmd.AddCommand(newAircraftAddCmd())
	cmd.AddCommand(newAircraftListCmd())
	cmd.AddCommand(newAircraftGetCmd())
	cmd.AddCommand(newAircraftDeleteCmd())
	cmd.AddCommand(newAircraftFlightsCmd())

	return cmd
}

func newAircraftAddCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new aircraft",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": name}
			var result Aircraft

			if err := client.Post("/api/v1/aircraft", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Aircraft name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newAircraftListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all aircraft",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Aircraft

			if err := client.Get("/api/v1/aircraft", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAircraftGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <aircraft-id>",
		Short: "Show an aircraft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Aircraft

			if err := client.Get("/api/v1/aircraft/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAircraftDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <aircraft-id>",
		Short: "Delete an aircraft and its flight records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/aircraft/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Aircraft %s deleted", args[0]))
			return nil
		},
	}
}

func newAircraftFlightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flights <aircraft-id>",
		Short: "List the flight records of an aircraft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []FlightRecord

			if err := client.Get("/api/v1/aircraft/"+args[0]+"/flights", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
