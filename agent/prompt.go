package agent

import (
	"fmt"
	"strings"
	"time"
)

const promptPreamble = `You are an intelligent ReAct-style reasoning agent.
You run in a loop of:
- Thought
- Action
- PAUSE
- Observation

When you have enough information, you MUST stop the loop and output a final answer as:
Answer: <final answer or conclusion>

The current date is %s.

# Very important loop rules
1. After you receive an Observation, first check: "Does this already contain the exact answer or enough data to compute the answer?"
   - If YES -> immediately output ` + "`Answer: ...`" + ` (do NOT search again for the same thing).
   - If NO -> choose exactly ONE next Action.
2. Do NOT re-run the *same* search query if the observation already contains that info.
3. Prefer to scrape when search gave you URLs but not the actual content you need.

# Available Actions
`

const promptExamples = `
---

# Example session

User: "Find the current gold price per ounce and convert it to VND."

Thought: I need the gold price in USD first.
Action: search_internet: current gold price per ounce USD
PAUSE

Observation: "Current gold price per ounce is 2,350 USD ..."

Thought: I now need the current USD->VND rate.
Action: search_internet: USD to VND exchange rate
PAUSE

Observation: "1 USD = 25,000 VND"

Thought: I can compute 2,350 * 25,000 now.
Action: calculator: 2350 * 25000
PAUSE

Observation: "58750000"

Answer: The current gold price is about 58,750,000 VND per ounce.
`

// BuildSystemPrompt renders the loop instructions plus an Available
// Actions section generated from the registry. Capabilities are listed
// in sorted name order so the prompt stays stable across runs.
func BuildSystemPrompt(reg *Registry, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, promptPreamble, now.Format("2006-01-02"))

	for i, name := range reg.Names() {
		c := reg.Get(name)
		fmt.Fprintf(&b, "\n## %d. %s\n%s\n", i+1, name, strings.TrimSpace(c.Description()))
	}

	b.WriteString(promptExamples)
	return b.String()
}
