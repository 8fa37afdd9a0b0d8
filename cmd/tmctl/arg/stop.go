package arg

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/timelyhq/timely/internal/ipc"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the timer and persist the session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		conn, obj := timerObject()
		defer conn.Close()

		var result string
		if err := obj.Call(ipc.InterfaceName+".Stop", 0).Store(&result); err != nil {
			log.Fatal("Failed to call method:", err)
		}
		fmt.Println("Timer", result)
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
