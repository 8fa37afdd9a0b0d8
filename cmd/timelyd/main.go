package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/godbus/dbus/v5"

	"github.com/timelyhq/timely/internal/config"
	"github.com/timelyhq/timely/internal/ipc"
	"github.com/timelyhq/timely/internal/monitor"
	"github.com/timelyhq/timely/internal/notify"
	"github.com/timelyhq/timely/internal/store"
	"github.com/timelyhq/timely/internal/timer"
)

func main() {
	// check for argument to determine config location
	argPath := os.ExpandEnv("$HOME/.config/timely/config.toml")
	if len(os.Args) > 1 {
		argPath = os.Args[1]
	}
	log.Println("Using config file at:", argPath)

	cfg, err := config.LoadFromFile(argPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	st, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatal("Failed to initialize store:", err)
	}

	user, err := st.GetOrCreateUser()
	if err != nil {
		log.Fatal("Failed to resolve user profile:", err)
	}

	mon := monitor.New(monitor.NewEvdevSource())
	mon.SetIdleThreshold(cfg.IdleThresholdMinutes)

	mgr := timer.NewManager(st, mon, user.ID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	var wg sync.WaitGroup

	// Serve the timer over the session bus
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Println("Opening D-Bus service...")
		if err := serveTimely(ctx, mgr, st); err != nil {
			log.Println("timely service error:", err)
			cancel()
		}
	}()

	// Break reminders and idle warnings
	if *cfg.Notifications.BreakReminders || *cfg.Notifications.IdleWarnings {
		notifier, err := notify.New()
		if err != nil {
			log.Println("Desktop notifications unavailable:", err)
		} else {
			defer notifier.Close()
			if *cfg.Notifications.IdleWarnings {
				mon.OnIdleChange(func(idle bool) {
					if idle {
						if err := notifier.Send("Idle", "No activity detected - the timer is still running"); err != nil {
							log.Println("idle warning failed:", err)
						}
					}
				})
			}
			if *cfg.Notifications.BreakReminders {
				reminder := notify.NewReminder(mgr, notifier, user.Preferences)
				wg.Add(1)
				go func() {
					defer wg.Done()
					reminder.Run(ctx)
				}()
			}
		}
	}

	wg.Wait()

	// Finalize any in-flight session before exiting
	if err := mgr.Stop(); err != nil {
		log.Println("final stop:", err)
	}
	fmt.Println("Shutdown complete")
}

func serveTimely(ctx context.Context, mgr *timer.Manager, st *store.Store) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	reply, err := conn.RequestName(ipc.ServiceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("failed to request name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("another timely daemon already owns %s", ipc.ServiceName)
	}

	svc := &ipc.TimerService{Timer: mgr, Store: st}
	if err := conn.Export(svc, dbus.ObjectPath(ipc.ObjectPath), ipc.InterfaceName); err != nil {
		return fmt.Errorf("failed to export interface: %w", err)
	}

	<-ctx.Done()
	return nil
}
