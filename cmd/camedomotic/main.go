package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "camedomotic",
	Short: "CAME Domotic Control CLI",
	Long:  `A command line interface for controlling CAME Domotic home-automation servers.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
