package arg

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/timelyhq/timely/internal/ipc"
)

var pauseCmd = &cobra.Command{
	Use:     "pause",
	Aliases: []string{"p"},
	Short:   "Pause the running timer",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		conn, obj := timerObject()
		defer conn.Close()

		if err := obj.Call(ipc.InterfaceName+".Pause", 0).Store(); err != nil {
			log.Fatal("Failed to call method:", err)
		}
		fmt.Println("Timer paused")
	},
}

func init() {
	rootCmd.AddCommand(pauseCmd)
}
