package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zberg/go-camedomotic/pkg/camedomotic"
)

var (
	host     string
	username string
	password string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "", "host of the CAME Domotic server")
	rootCmd.PersistentFlags().StringVar(&username, "username", "admin", "username for the server")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "password for the server")

	lightCmd.Flags().String("set", "", "desired state: on or off")
	lightCmd.Flags().Int("brightness", -1, "brightness percentage 0-100 (dimmers only)")
	openingCmd.Flags().String("move", "", "desired movement: open, close or stop")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(lightsCmd)
	rootCmd.AddCommand(lightCmd)
	rootCmd.AddCommand(openingsCmd)
	rootCmd.AddCommand(openingCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(scenarioRunCmd)
	rootCmd.AddCommand(updatesCmd)
}

func getClient() *camedomotic.Client {
	if host == "" {
		fmt.Println("Error: --host is required")
		os.Exit(1)
	}
	client, err := camedomotic.NewClient(host, username, password)
	if err != nil {
		fmt.Printf("Error creating client: %v\n", err)
		os.Exit(1)
	}
	return client
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show server information and supported features",
	Run: func(cmd *cobra.Command, args []string) {
		client := getClient()
		defer client.Close()

		info, err := client.ServerInfo(context.Background())
		if err != nil {
			fmt.Printf("Error getting server info: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Keycode:  %s\n", info.Keycode)
		fmt.Printf("Serial:   %s\n", info.Serial)
		fmt.Printf("Software: %s\n", info.Software)
		fmt.Println("Features:")
		for _, f := range info.Features {
			fmt.Printf("  - %s\n", f)
		}
	},
}

var lightsCmd = &cobra.Command{
	Use:   "lights",
	Short: "List all lights",
	Run: func(cmd *cobra.Command, args []string) {
		client := getClient()
		defer client.Close()

		lights, err := client.Lights(context.Background())
		if err != nil {
			fmt.Printf("Error listing lights: %v\n", err)
			os.Exit(1)
		}

		for _, l := range lights {
			stateStr := "OFF"
			if l.Status == camedomotic.LightOn {
				stateStr = "ON"
			}
			if l.Dimmable() {
				fmt.Printf("Light %d: %s [%s, %d%%]\n", l.ID, l.Name, stateStr, l.Brightness)
			} else {
				fmt.Printf("Light %d: %s [%s]\n", l.ID, l.Name, stateStr)
			}
		}
	},
}

var lightCmd = &cobra.Command{
	Use:   "light [light-id]",
	Short: "Control a light",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Invalid light id '%s': must be a number\n", args[0])
			os.Exit(1)
		}

		stateStr, _ := cmd.Flags().GetString("set")
		var status camedomotic.LightStatus
		switch stateStr {
		case "on":
			status = camedomotic.LightOn
		case "off":
			status = camedomotic.LightOff
		default:
			fmt.Println("Error: --set must be 'on' or 'off'")
			os.Exit(1)
		}

		ctl := camedomotic.LightControl{ID: id, Status: status}
		if cmd.Flags().Changed("brightness") {
			brightness, _ := cmd.Flags().GetInt("brightness")
			if brightness < 0 || brightness > 100 {
				fmt.Printf("Invalid brightness %d: must be 0-100\n", brightness)
				os.Exit(1)
			}
			ctl.Brightness = &brightness
		}

		client := getClient()
		defer client.Close()

		if err := client.SetLight(context.Background(), ctl); err != nil {
			fmt.Printf("Error controlling light: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Light %d set to %s\n", id, stateStr)
	},
}

var openingsCmd = &cobra.Command{
	Use:   "openings",
	Short: "List all openings",
	Run: func(cmd *cobra.Command, args []string) {
		client := getClient()
		defer client.Close()

		openings, err := client.Openings(context.Background())
		if err != nil {
			fmt.Printf("Error listing openings: %v\n", err)
			os.Exit(1)
		}

		for _, o := range openings {
			stateStr := "STOPPED"
			switch o.Status {
			case camedomotic.OpeningOpening:
				stateStr = "OPENING"
			case camedomotic.OpeningClosing:
				stateStr = "CLOSING"
			}
			fmt.Printf("Opening %d/%d: %s [%s]\n", o.OpenActID, o.CloseActID, o.Name, stateStr)
		}
	},
}

var openingCmd = &cobra.Command{
	Use:   "opening [open-act-id]",
	Short: "Control an opening",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Invalid opening id '%s': must be a number\n", args[0])
			os.Exit(1)
		}

		moveStr, _ := cmd.Flags().GetString("move")
		var status camedomotic.OpeningStatus
		switch moveStr {
		case "open":
			status = camedomotic.OpeningOpening
		case "close":
			status = camedomotic.OpeningClosing
		case "stop":
			status = camedomotic.OpeningStopped
		default:
			fmt.Println("Error: --move must be 'open', 'close' or 'stop'")
			os.Exit(1)
		}

		client := getClient()
		defer client.Close()

		// The list is needed to resolve the close actuator id.
		openings, err := client.Openings(context.Background())
		if err != nil {
			fmt.Printf("Error listing openings: %v\n", err)
			os.Exit(1)
		}

		for _, o := range openings {
			if o.OpenActID != id {
				continue
			}
			if err := client.MoveOpening(context.Background(), o, status); err != nil {
				fmt.Printf("Error controlling opening: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Opening %s: %s\n", o.Name, moveStr)
			return
		}

		fmt.Printf("No opening with id %d\n", id)
		os.Exit(1)
	},
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List all scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		client := getClient()
		defer client.Close()

		scenarios, err := client.Scenarios(context.Background())
		if err != nil {
			fmt.Printf("Error listing scenarios: %v\n", err)
			os.Exit(1)
		}

		for _, s := range scenarios {
			fmt.Printf("Scenario %d: %s\n", s.ID, s.Name)
		}
	},
}

var scenarioRunCmd = &cobra.Command{
	Use:   "scenario-run [scenario-id]",
	Short: "Activate a scenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Invalid scenario id '%s': must be a number\n", args[0])
			os.Exit(1)
		}

		client := getClient()
		defer client.Close()

		if err := client.ActivateScenario(context.Background(), id); err != nil {
			fmt.Printf("Error activating scenario: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scenario %d activated\n", id)
	},
}

var updatesCmd = &cobra.Command{
	Use:   "updates",
	Short: "Drain pending status updates",
	Run: func(cmd *cobra.Command, args []string) {
		client := getClient()
		defer client.Close()

		updates, err := client.Updates(context.Background())
		if err != nil {
			fmt.Printf("Error getting updates: %v\n", err)
			os.Exit(1)
		}

		if len(updates) == 0 {
			fmt.Println("No pending updates.")
			return
		}
		for _, u := range updates {
			fmt.Printf("%s: %v\n", u.Kind(), map[string]any(u))
		}
	},
}
