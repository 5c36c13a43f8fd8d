// Package mcp implements an in-process Model Context Protocol server.
//
// The server holds a thread-safe registry of tools and answers listing
// and invocation requests either programmatically or over a standard
// SDK transport. The root package builds on it to expose cursor-agent
// operations as tools any MCP host can call.
package mcp
