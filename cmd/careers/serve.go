package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/career-arcade/internal/config"
	"github.com/vovakirdan/career-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the careers SSH server",
	Long: `Start an SSH server that shows the career carousel to every
connection. Each SSH connection gets its own session and games; results
are stored per-server.

Settings come from the environment and explicit flags win:
  CAREERS_SSH_ADDR         --ssh
  CAREERS_HOST_KEY         --host-key
  CAREERS_DB               --db
  CAREERS_IDLE_TIMEOUT     --idle-timeout
  CAREERS_WHATSAPP_NUMBER  --whatsapp

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.careers/host_key

Examples:
  careers serve                           # Listen on :23234 with auto-generated key
  careers serve --ssh :2222               # Listen on port 2222
  careers serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle timeout before disconnecting")
	serveCmd.Flags().StringVar(&flagCareers, "careers", "", "Path to a custom career catalogue YAML")
}

// serverConfig merges environment settings with explicitly set flags.
func serverConfig(cmd *cobra.Command) (config.ServerConfig, error) {
	cfg, err := config.LoadServer()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleTimeout = flagIdleTimeout
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("whatsapp") {
		cfg.WhatsApp = flagWhatsApp
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := serverConfig(cmd)
	if err != nil {
		return err
	}
	careers, err := config.LoadCareers(flagCareers)
	if err != nil {
		return err
	}

	server, err := tui.NewSSHServer(cfg, careers, flagFPS, logger.WithPrefix("careers-ssh"))
	if err != nil {
		return err
	}

	logger.Info("connect with ssh", "address", server.Addr())
	return server.ListenAndServe()
}
