package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridrun/lightcycles/internal/platform/tui"
)

var (
	flagSSHAddr        string
	flagHostKey        string
	flagServeConfig    string
	flagServeDifficult string
	flagIdleTimeout    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH match server",
	Long: `Start an SSH server that lets users connect and ride against the
CPU pilot. Each connection gets an isolated match; results land in
the server's shared match history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.cycles/host_key

Examples:
  cycles serve                           # Listen on :23235 with auto-generated key
  cycles serve --ssh :2222               # Listen on port 2222
  cycles serve --host-key ./my_host_key  # Use specific host key
  cycles serve --difficulty hard         # Harder matches for everyone

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom match config YAML")
	serveCmd.Flags().StringVar(&flagServeDifficult, "difficulty", "", "Difficulty preset: easy, normal, hard")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		ConfigPath:  flagServeConfig,
		Difficulty:  flagServeDifficult,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting light cycle SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
