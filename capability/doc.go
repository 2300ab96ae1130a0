// Package capability provides the built-in actions an agent can dispatch:
// arithmetic, web search, page scraping, weather lookup, and local file
// access. Each capability implements agent.Capability and returns an error
// only for failures the model should be told about; expected negative
// outcomes (no search results, missing file) are ordinary observations.
package capability
