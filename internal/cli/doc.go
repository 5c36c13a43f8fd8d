// Package cli provides binary discovery and command building for the
// cursor-agent CLI.
//
// This package provides two main capabilities:
//
// # Binary Discovery
//
// The Discoverer interface locates the agent binary:
//
//	discoverer := cli.NewDiscoverer(&cli.Config{
//	    BinaryPath: "",           // Optional explicit path
//	    Logger:     slog.Default(),
//	})
//	binPath, err := discoverer.Discover(ctx)
//
// Discovery searches in the following order:
//  1. Explicit path in Config.BinaryPath (if provided)
//  2. System PATH
//  3. Common installation directories (/usr/local/bin, /usr/bin, ~/.local/bin)
//
// After the binary is found, its version is probed with a short timeout and
// logged. The probe can be skipped via Config.SkipVersionCheck or the
// CURSOR_AGENT_SDK_SKIP_VERSION_CHECK environment variable.
//
// # Command Building
//
// The package builds argument lists and the process environment:
//
//	args := cli.BuildArgs(&cli.Invocation{OutputFormat: config.OutputJSON}, options)
//	env := cli.BuildEnvironment(options)
//
// The prompt is never placed in the argument list; callers deliver it over
// stdin. Subcommand builders cover create-chat and model listing.
package cli
