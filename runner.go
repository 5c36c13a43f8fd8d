package cursoragent

import "github.com/yidong72/cursor-agent-sdk-go/internal/config"

// Runner defines the interface for single-shot agent invocations.
// Implement this to substitute the subprocess layer for testing,
// mocking, or alternative execution methods (e.g., remote agents).
//
// The default implementation spawns one cursor-agent process per call.
// Custom runners can be injected via WithRunner.
type Runner = config.Runner

// RunResult carries the captured output of one finished invocation.
type RunResult = config.RunResult
