package agent

import "fmt"

// TruncationMode specifies how an oversized observation is cut.
type TruncationMode string

const (
	TruncateHeadTail TruncationMode = "head_tail"
	TruncateTail     TruncationMode = "tail"
)

// Default character limits per capability. Observations are cut before
// reinjection so one oversized scrape cannot flood the context window.
var DefaultObservationLimits = map[string]int{
	"scrape_content":     8000,
	"read_file_content":  8000,
	"search_internet":    4000,
	"write_file_content": 1000,
}

// Default truncation modes per capability.
var DefaultTruncationModes = map[string]TruncationMode{
	"scrape_content":    TruncateHeadTail,
	"read_file_content": TruncateHeadTail,
	"search_internet":   TruncateTail,
}

const fallbackObservationLimit = 8000

// TruncateOutput applies character-based truncation to an observation.
func TruncateOutput(output string, maxChars int, mode TruncationMode) string {
	if len(output) <= maxChars {
		return output
	}

	removed := len(output) - maxChars
	switch mode {
	case TruncateTail:
		return fmt.Sprintf("[Observation truncated: first %d characters removed.]\n\n", removed) +
			output[len(output)-maxChars:]
	default: // head_tail
		half := maxChars / 2
		return output[:half] +
			fmt.Sprintf("\n\n[Observation truncated: %d characters removed from the middle. "+
				"Re-run the action with more targeted input if you need the missing part.]\n\n", removed) +
			output[len(output)-half:]
	}
}

// TruncateObservation applies the per-capability limit to an observation
// before it is fed back into the conversation.
func TruncateObservation(output string, name string, limits map[string]int) string {
	maxChars, ok := limits[name]
	if !ok {
		maxChars, ok = DefaultObservationLimits[name]
		if !ok {
			maxChars = fallbackObservationLimit
		}
	}

	mode, ok := DefaultTruncationModes[name]
	if !ok {
		mode = TruncateHeadTail
	}

	return TruncateOutput(output, maxChars, mode)
}
