package cli

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/yidong72/cursor-agent-sdk-go/internal/config"
	"github.com/yidong72/cursor-agent-sdk-go/internal/errors"
)

// VersionCheckTimeout is the timeout for the agent version probe.
const VersionCheckTimeout = 2 * time.Second

// Config holds configuration for agent binary discovery.
type Config struct {
	// BinaryPath is an explicit binary path that skips PATH search.
	// If empty, discovery searches PATH and common locations.
	BinaryPath string

	// SkipVersionCheck skips the version probe during discovery.
	// Can also be controlled via the CURSOR_AGENT_SDK_SKIP_VERSION_CHECK
	// environment variable.
	SkipVersionCheck bool

	// Logger is an optional logger for discovery operations.
	// If nil, a default no-op logger is used.
	Logger *slog.Logger
}

// Discoverer locates the cursor-agent binary.
type Discoverer interface {
	// Discover locates the agent binary and probes its version.
	// Returns the path to the binary or an error.
	Discover(ctx context.Context) (string, error)
}

// discoverer implements the Discoverer interface.
type discoverer struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a new agent binary discoverer with the given
// configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}

	return &discoverer{
		cfg: cfg,
		log: log,
	}
}

// Discover locates the agent binary and probes its version.
func (d *discoverer) Discover(ctx context.Context) (string, error) {
	d.log.Debug("Discovering agent binary")

	binPath, err := d.findAgent()
	if err != nil {
		d.log.Error("Failed to find agent binary", "error", err)

		return "", err
	}

	d.log.Debug("Found agent binary", "bin_path", binPath)

	d.probeVersion(ctx, binPath)

	return binPath, nil
}

// findAgent locates the agent binary.
func (d *discoverer) findAgent() (string, error) {
	// If explicit path provided, use it and only it
	if d.cfg.BinaryPath != "" {
		d.log.Debug("Using explicit binary path", "bin_path", d.cfg.BinaryPath)

		if _, err := os.Stat(d.cfg.BinaryPath); err == nil {
			return d.cfg.BinaryPath, nil
		}

		d.log.Debug("Explicit binary path not found", "bin_path", d.cfg.BinaryPath)

		return "", &errors.AgentNotFoundError{SearchedPaths: []string{d.cfg.BinaryPath}}
	}

	searchedPaths := make([]string, 0, 4)

	// Search in PATH
	d.log.Debug("Searching for agent binary in PATH", "name", config.DefaultBinary)

	if path, err := exec.LookPath(config.DefaultBinary); err == nil {
		d.log.Debug("Found agent binary in PATH", "path", path)

		return path, nil
	}

	searchedPaths = append(searchedPaths, "$PATH")

	// Check common install locations
	commonPaths := []string{
		"/usr/local/bin/" + config.DefaultBinary,
		"/usr/bin/" + config.DefaultBinary,
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		commonPaths = append(commonPaths, filepath.Join(homeDir, ".local/bin", config.DefaultBinary))
	}

	for _, path := range commonPaths {
		searchedPaths = append(searchedPaths, path)
		d.log.Debug("Checking common path", "path", path)

		if _, err := os.Stat(path); err == nil {
			d.log.Debug("Found agent binary at common path", "path", path)

			return path, nil
		}
	}

	d.log.Warn("Agent binary not found in any searched paths", "searched_paths", searchedPaths)

	return "", &errors.AgentNotFoundError{SearchedPaths: searchedPaths}
}

// probeVersion runs the agent version command and logs what it reports.
// cursor-agent ships date-stamped releases with no documented version
// floor, so the probe only records the version. Errors are silently
// ignored.
func (d *discoverer) probeVersion(ctx context.Context, binPath string) {
	// Skip if configured
	if d.cfg.SkipVersionCheck {
		d.log.Debug("Skipping agent version probe (configured)")

		return
	}

	// Skip if env var is set
	if os.Getenv("CURSOR_AGENT_SDK_SKIP_VERSION_CHECK") != "" {
		d.log.Debug("Skipping agent version probe (CURSOR_AGENT_SDK_SKIP_VERSION_CHECK set)")

		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(ctx, VersionCheckTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binPath, "--version")

	output, err := cmd.Output()
	if err != nil {
		// Silently ignore errors
		d.log.Debug("Agent version probe failed", "error", err)

		return
	}

	// Extract a dotted release stamp (e.g. "2025.08.15" or "1.4.0")
	versionStr := strings.TrimSpace(string(output))
	re := regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)+)`)

	match := re.FindStringSubmatch(versionStr)
	if match == nil {
		d.log.Debug("Could not parse agent version", "output", versionStr)

		return
	}

	d.log.Debug("Agent version probe passed", "version", match[1])
}
