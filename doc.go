// Package cursoragent provides a Go SDK for driving the cursor-agent CLI.
//
// The SDK runs the agent in non-interactive mode, one process per query,
// and decodes its JSON output. It supports one-shot queries, live event
// streams with cancellation, multi-turn conversations, bounded parallel
// execution, and exposing the agent as Model Context Protocol tools.
//
// # Basic Usage
//
// For simple, one-shot queries, use the Query function:
//
//	ctx := context.Background()
//	result, err := cursoragent.Query(ctx, "What is 2+2?",
//	    cursoragent.WithTimeout(60*time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Success {
//	    log.Fatalf("agent failed: %s", result.ErrorMessage)
//	}
//	fmt.Println(result.Text)
//
// Note the two failure channels: an error return means the process could
// not be run, while agent-side failures (non-zero exit, timeout,
// undecodable output) come back as a Result with Success false.
//
// # Streaming
//
// QueryStream delivers decoded events as the agent produces them. The
// stream can be cancelled mid-run:
//
//	client := cursoragent.New(cursoragent.WithModel("gpt-5"))
//	stream, err := client.QueryStream(ctx, "Write a long story")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer stream.Close()
//
//	for ev := range stream.Events() {
//	    if ev.Kind == cursoragent.KindAssistantDelta {
//	        fmt.Print(ev.Text)
//	    }
//	    if len(stream.Collected()) > 100 {
//	        stream.Cancel(syscall.SIGTERM)
//	        break
//	    }
//	}
//
// # Conversations
//
// Session threads a conversation identifier through successive queries:
//
//	session := cursoragent.NewSession(client)
//	if _, err := session.Send(ctx, "My name is Alice."); err != nil {
//	    log.Fatal(err)
//	}
//	reply, err := session.Send(ctx, "What is my name?")
//
// # Parallel Queries
//
// Pool bounds how many agent processes run at once:
//
//	pool := cursoragent.NewPool(client, cursoragent.WithWorkers(4))
//	defer pool.Close()
//
//	results, err := pool.QueryMany(ctx, prompts)
//
// # Logging
//
// For detailed operation tracking, use WithLogger:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	client := cursoragent.New(cursoragent.WithLogger(logger))
//
// # Error Handling
//
// The SDK provides typed errors for launch failures:
//
//	result, err := client.Query(ctx, prompt)
//	if err != nil {
//	    if notFound, ok := errors.AsType[*cursoragent.AgentNotFoundError](err); ok {
//	        log.Fatalf("cursor-agent not installed, searched: %v", notFound.SearchedPaths)
//	    }
//	    log.Fatal(err)
//	}
//
// # Requirements
//
// The SDK requires the cursor-agent CLI to be installed and available in
// your system PATH. You can specify a custom binary path using the
// WithBinaryPath option.
package cursoragent
