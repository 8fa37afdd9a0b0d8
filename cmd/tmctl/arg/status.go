package arg

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/timelyhq/timely/internal/ipc"
	"github.com/timelyhq/timely/internal/timer"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"s"},
	Short:   "Show the current timer state",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		conn, obj := timerObject()
		defer conn.Close()

		var raw string
		if err := obj.Call(ipc.InterfaceName+".Status", 0).Store(&raw); err != nil {
			log.Fatal("Failed to call method:", err)
		}

		var snap timer.Snapshot
		if err := json.Unmarshal([]byte(raw), &snap); err != nil {
			log.Fatal("Failed to parse status:", err)
		}

		fmt.Printf("State:    %s\n", snap.State)
		fmt.Printf("Elapsed:  %s\n", snap.Formatted)
		if snap.SessionID != "" {
			fmt.Printf("Session:  %s\n", snap.SessionID)
			fmt.Printf("Keyboard: %d events\n", snap.KeyboardEvents)
			fmt.Printf("Mouse:    %d events\n", snap.MouseEvents)
			fmt.Printf("Idle:     %v (%d minute(s) so far)\n", snap.Idle, snap.IdleMinutes)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
