package arg

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/timelyhq/timely/internal/ipc"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start tracking a work session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		conn, obj := timerObject()
		defer conn.Close()

		if err := obj.Call(ipc.InterfaceName+".Start", 0).Store(); err != nil {
			log.Fatal("Failed to call method:", err)
		}
		fmt.Println("Timer started")
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
