package cursoragent

import "context"

// Query runs a single prompt with a default client.
//
// Equivalent to New().Query(ctx, prompt, opts...). Construct a Client
// when you need to configure the model, logging, or authentication, or
// when issuing many queries that should share a model list cache.
func Query(ctx context.Context, prompt string, opts ...QueryOption) (*Result, error) {
	return New().Query(ctx, prompt, opts...)
}

// QueryStream starts a streaming invocation with a default client.
//
// Equivalent to New().QueryStream(ctx, prompt, opts...).
func QueryStream(ctx context.Context, prompt string, opts ...QueryOption) (*Stream, error) {
	return New().QueryStream(ctx, prompt, opts...)
}
