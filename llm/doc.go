// Package llm provides a provider-agnostic completion client that wraps the
// gollm library (github.com/teilomillet/gollm). It is the sole point of
// contact between the agent loop and a language model.
//
// # Architecture
//
//   - ProviderAdapter: the interface every provider backend implements.
//   - Client: provider routing plus a middleware chain around Complete.
//   - GollmAdapter: translates between this package's types and gollm.
//   - Typed errors: a hierarchy rooted at SDKError with an IsRetryable
//     classification used by the optional retry middleware.
//
// # Quick Start
//
//	adapter, _ := llm.NewGollmAdapter("openai", os.Getenv("OPENAI_API_KEY"))
//	client := llm.NewClient(llm.WithProvider("openai", adapter))
//
//	resp, _ := client.Complete(ctx, llm.Request{
//	    Model:    "gpt-5.2-mini",
//	    Messages: []llm.Message{llm.UserMessage("Hello")},
//	})
//	fmt.Println(resp.Text)
//
// Retries are opt-in via WithRetry; by default a failed completion is
// surfaced to the caller exactly once. The agent loop relies on that: it
// absorbs the error into conversational content rather than retrying.
package llm
