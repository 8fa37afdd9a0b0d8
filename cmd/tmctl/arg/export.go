package arg

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/timelyhq/timely/internal/ipc"
)

var exportCmd = &cobra.Command{
	Use:   "export <filename>",
	Short: "Export all tracked sessions to a CSV file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		conn, obj := timerObject()
		defer conn.Close()

		var path string
		if err := obj.Call(ipc.InterfaceName+".Export", 0, args[0]).Store(&path); err != nil {
			log.Fatal("Failed to call method:", err)
		}
		fmt.Println("Exported to:", path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
