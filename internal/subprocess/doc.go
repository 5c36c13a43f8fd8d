// Package subprocess runs cursor-agent child processes.
//
// This package provides the two execution shapes of the SDK: ExecRunner
// runs one invocation to completion and captures its output, and Stream
// spawns the agent in stream-json mode and delivers decoded events as
// they arrive. It handles process lifecycle, output scanning, stderr
// capture, and signal-based cancellation with kill escalation.
package subprocess
