package arg

import (
	"fmt"
	"log"
	"os"

	"github.com/godbus/dbus/v5"
	"github.com/spf13/cobra"

	"github.com/timelyhq/timely/internal/ipc"
)

var rootCmd = &cobra.Command{
	Use:   "tmctl",
	Short: "tmctl is the command line tool for the Timely daemon",
	Long: `tmctl controls the Timely work-session tracker via D-Bus.
			You can start, pause, resume and stop the timer, query its
			status, and export tracked sessions.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// timerObject connects to the session bus and returns the daemon's
// exported object.
func timerObject() (*dbus.Conn, dbus.BusObject) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Fatal("Failed to connect to session bus:", err)
	}
	return conn, conn.Object(ipc.ServiceName, dbus.ObjectPath(ipc.ObjectPath))
}
