package arg

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/timelyhq/timely/internal/ipc"
)

var thresholdCmd = &cobra.Command{
	Use:   "idle-threshold <minutes>",
	Short: "Set how many minutes without input count as idle",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		minutes, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatal("Invalid minutes value:", err)
		}

		conn, obj := timerObject()
		defer conn.Close()

		if err := obj.Call(ipc.InterfaceName+".SetIdleThreshold", 0, int32(minutes)).Store(); err != nil {
			log.Fatal("Failed to call method:", err)
		}
		fmt.Printf("Idle threshold set to %d minute(s)\n", minutes)
	},
}

func init() {
	rootCmd.AddCommand(thresholdCmd)
}
