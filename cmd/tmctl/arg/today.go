package arg

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/timelyhq/timely/internal/config"
	"github.com/timelyhq/timely/internal/session"
	"github.com/timelyhq/timely/internal/store"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Summarize today's tracked sessions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadFromFile(os.ExpandEnv("$HOME/.config/timely/config.toml"))
		if err != nil {
			log.Fatal("Failed to load config:", err)
		}
		st, err := store.New(cfg.DataDir)
		if err != nil {
			log.Fatal("Failed to open store:", err)
		}

		sessions, err := st.LoadToday()
		if err != nil {
			log.Fatal("Failed to load sessions:", err)
		}

		sum := session.Summarize(sessions)
		fmt.Printf("Sessions:     %d\n", sum.Sessions)
		fmt.Printf("Total:        %d minute(s)\n", sum.TotalMinutes)
		fmt.Printf("Active:       %d minute(s)\n", sum.ActiveMinutes)
		fmt.Printf("Idle:         %d minute(s)\n", sum.IdleMinutes)
		fmt.Printf("Keyboard:     %d events\n", sum.KeyboardEvents)
		fmt.Printf("Mouse:        %d events\n", sum.MouseEvents)
		fmt.Printf("Productivity: %.2f%%\n", sum.Productivity)
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
