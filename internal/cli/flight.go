package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFlightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flight",
		Short: "Flight record commands",
	}

	cmd.AddCommand(newFlightAddCmd())
	cmd.AddCommand(newFlightListCmd())
	cmd.AddCommand(newFlightGetCmd())
	cmd.AddCommand(newFlightEditCmd())
	cmd.AddCommand(newFlightDeleteCmd())

	return cmd
}

// flightFlags binds the record field flags shared by add and edit
type flightFlags struct {
	pilot       string
	copilot     string
	departure   string
	arrival     string
	hours       string
	place       string
	flightType  string
	observation string
}

func (f *flightFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.pilot, "pilot", "", "Pilot name (required)")
	cmd.Flags().StringVar(&f.copilot, "copilot", "", "Copilot name (required)")
	cmd.Flags().StringVar(&f.departure, "departure-time", "", "Departure time, HH:MM or HH:MM:SS (required)")
	cmd.Flags().StringVar(&f.arrival, "arrival-time", "", "Arrival time, HH:MM or HH:MM:SS (required)")
	cmd.Flags().StringVar(&f.hours, "hours", "", "Total flown hours (required)")
	cmd.Flags().StringVar(&f.place, "place", "", "Departure place (required)")
	cmd.Flags().StringVar(&f.flightType, "type", "", "Flight type (required)")
	cmd.Flags().StringVar(&f.observation, "observation", "", "Observation (may be empty)")
	_ = cmd.MarkFlagRequired("pilot")
	_ = cmd.MarkFlagRequired("copilot")
	_ = cmd.MarkFlagRequired("departure-time")
	_ = cmd.MarkFlagRequired("arrival-time")
	_ = cmd.MarkFlagRequired("hours")
	_ = cmd.MarkFlagRequired("place")
	_ = cmd.MarkFlagRequired("type")
}

func (f *flightFlags) body() map[string]string {
	return map[string]string{
		"pilot":             f.pilot,
		"copilot":           f.copilot,
		"departure_time":    f.departure,
		"arrival_time":      f.arrival,
		"total_flown_hours": f.hours,
		"departure_place":   f.place,
		"flight_type":       f.flightType,
		"observation":       f.observation,
	}
}

func newFlightAddCmd() *cobra.Command {
	var flags flightFlags

	cmd := &cobra.Command{
		Use:   "add <aircraft-id>",
		Short: "Log a flight against an aircraft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result FlightRecord

			path := "/api/v1/aircraft/" + args[0] + "/flights"
			if err := client.Post(path, flags.body(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newFlightListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all flight records",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []FlightRecord

			if err := client.Get("/api/v1/flights", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFlightGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <flight-id>",
		Short: "Show a flight record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result FlightRecord

			if err := client.Get("/api/v1/flights/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFlightEditCmd() *cobra.Command {
	var flags flightFlags

	cmd := &cobra.Command{
		Use:   "edit <flight-id>",
		Short: "Replace the field values of a flight record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result FlightRecord

			if err := client.Put("/api/v1/flights/"+args[0], flags.body(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newFlightDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <flight-id>",
		Short: "Delete a flight record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/flights/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Flight %s deleted", args[0]))
			return nil
		},
	}
}
