package subprocess

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yidong72/cursor-agent-sdk-go/internal/config"
	"github.com/yidong72/cursor-agent-sdk-go/internal/errors"
)

func runnerOptions(binPath string) *config.Options {
	return &config.Options{
		BinaryPath:       binPath,
		SkipVersionCheck: true,
		KillOnTimeout:    true,
	}
}

func TestExecRunner_CapturesOutput(t *testing.T) {
	path := writeAgentScript(t, `#!/bin/sh
echo '{"type":"result","subtype":"success","result":"ok"}'
echo 'diagnostic noise' >&2
`)

	r := NewExecRunner(testLogger(), runnerOptions(path))
	res, err := r.Run(context.Background(), []string{"--print"}, "prompt")
	require.NoError(t, err)
	require.Zero(t, res.ExitCode)
	require.Contains(t, res.Stdout, `"subtype":"success"`)
	require.Contains(t, res.Stderr, "diagnostic noise")
}

func TestExecRunner_NonZeroExitIsNotAnError(t *testing.T) {
	path := writeAgentScript(t, `#!/bin/sh
echo 'authentication expired' >&2
exit 3
`)

	r := NewExecRunner(testLogger(), runnerOptions(path))
	res, err := r.Run(context.Background(), nil, "")
	require.NoError(t, err)
	require.Equal(t, 3, res.ExitCode)
	require.Contains(t, res.Stderr, "authentication expired")
}

func TestExecRunner_InputDeliveredOnStdin(t *testing.T) {
	path := writeAgentScript(t, `#!/bin/sh
IFS= read -r line
printf 'got:%s\n' "$line"
`)

	r := NewExecRunner(testLogger(), runnerOptions(path))
	res, err := r.Run(context.Background(), nil, "what is 2+2?")
	require.NoError(t, err)
	require.Equal(t, "got:what is 2+2?\n", res.Stdout)
}

func TestExecRunner_DeadlineKillsProcess(t *testing.T) {
	path := writeAgentScript(t, `#!/bin/sh
exec sleep 30
`)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	r := NewExecRunner(testLogger(), runnerOptions(path))

	start := time.Now()
	res, err := r.Run(ctx, nil, "")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Nil(t, res)

	// The interrupt lands well within the grace period; anything close to
	// the sleep duration means the process was not killed.
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestExecRunner_DetachedDeadlineLeavesProcessRunning(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "finished")

	path := writeAgentScript(t, `#!/bin/sh
sleep 1
echo done > "$MARKER_FILE"
`)

	opts := runnerOptions(path)
	opts.KillOnTimeout = false
	opts.Env = map[string]string{"MARKER_FILE": marker}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	r := NewExecRunner(testLogger(), opts)
	res, err := r.Run(ctx, nil, "")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Nil(t, res)

	// The abandoned process keeps running past the deadline and finishes
	// its work.
	require.Eventually(t, func() bool {
		_, statErr := os.Stat(marker)

		return statErr == nil
	}, 5*time.Second, 50*time.Millisecond, "abandoned process never finished")
}

func TestExecRunner_BinaryNotFound(t *testing.T) {
	r := NewExecRunner(testLogger(), runnerOptions(filepath.Join(t.TempDir(), "missing")))

	_, err := r.Run(context.Background(), nil, "")
	require.Error(t, err)

	var notFound *errors.AgentNotFoundError
	require.ErrorAs(t, err, &notFound)
}
