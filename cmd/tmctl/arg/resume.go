package arg

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/timelyhq/timely/internal/ipc"
)

var resumeCmd = &cobra.Command{
	Use:     "resume",
	Aliases: []string{"r"},
	Short:   "Resume a paused timer",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		conn, obj := timerObject()
		defer conn.Close()

		if err := obj.Call(ipc.InterfaceName+".Resume", 0).Store(); err != nil {
			log.Fatal("Failed to call method:", err)
		}
		fmt.Println("Timer resumed")
	},
}

func init() {
	rootCmd.AddCommand(resumeCmd)
}
