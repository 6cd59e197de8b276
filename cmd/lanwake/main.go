package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/wol-labs/lanwake"
	"github.com/wol-labs/lanwake/internal/cliconfig"
	"github.com/wol-labs/lanwake/internal/listen"
	"github.com/wol-labs/lanwake/internal/trigger"
)

const helpDescription = `
Wake a machine on the local network by sending the Wake-on-LAN magic
packet to a broadcast address.

Highlights:
  - Strict validation of MAC, broadcast IP, and port: typos fail loudly
    instead of silently waking nothing.
  - Target configurable via file, environment (LANWAKE_*), or flags.
  - watch mode wakes the target whenever the config file is written.
  - listen mode logs magic packets seen on the wake port, for checking
    that a sender on the segment actually works.

The send is fire-and-forget: success means the local network stack
accepted the datagram, nothing confirms the target woke up.
`

var exampleUsage = strings.TrimSpace(`
  lanwake --mac A0-36-BC-BB-EB-CC --broadcast 192.168.0.255 --port 9
  lanwake --config /etc/lanwake/config.toml
  lanwake watch --config /etc/lanwake/config.toml
  lanwake listen --listen-port 9 --metrics-addr :9102
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// loadConfig layers the config file, environment, and flags onto cfg.
// Flags win over environment, environment wins over the file.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	return cliconfig.ApplyEnvConfig(cfg, changed)
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "lanwake",
		Short:   "Send a Wake-on-LAN magic packet to a machine on the local network",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, &cfg, cfgPath); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log.Info().
				Str("mac", cfg.MACAddress).
				Str("broadcast", cfg.BroadcastIP).
				Str("port", cfg.Port).
				Msg("sending magic packet")

			if err := lanwake.SendMagicPacket(cfg.MACAddress, cfg.BroadcastIP, cfg.Port); err != nil {
				return err
			}

			log.Info().Msg("magic packet accepted by the local transport (delivery is unacknowledged)")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.lanwake/config.toml)")
	root.Flags().StringVar(&cfg.MACAddress, "mac", cfg.MACAddress, "target MAC address (XX-XX-XX-XX-XX-XX)")
	root.Flags().StringVar(&cfg.BroadcastIP, "broadcast", cfg.BroadcastIP, "IPv4 broadcast address to send to")
	root.Flags().StringVar(&cfg.Port, "port", cfg.Port, "UDP port to send to (usually 9 or 7)")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Send a magic packet whenever the config file is written",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile == "" {
				return fmt.Errorf("watch mode needs a config file; pass --config")
			}
			if err := loadConfig(cmd, &cfg, cfgPath); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return trigger.New(cfgFile, cfg.DebounceDelay, log).Run(ctx)
		},
	}
	watchCmd.Flags().DurationVar(&cfg.DebounceDelay, "debounce", cfg.DebounceDelay, "delay after a file change before sending")

	listenCmd := &cobra.Command{
		Use:   "listen",
		Short: "Log Wake-on-LAN magic packets received on the wake port",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, &cfg, cfgPath); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.MetricsAddr != "" {
				go func() {
					if err := listen.ServeMetrics(ctx, cfg.MetricsAddr, log); err != nil {
						log.Error().Err(err).Msg("metrics server")
					}
				}()
			}

			return listen.New(cfg.ListenPort, log).Run(ctx)
		},
	}
	listenCmd.Flags().IntVar(&cfg.ListenPort, "listen-port", cfg.ListenPort, "UDP port to listen on")
	listenCmd.Flags().StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "address to serve prometheus metrics on (disabled if empty)")

	root.AddCommand(watchCmd, listenCmd)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("lanwake")
		os.Exit(1)
	}
}
