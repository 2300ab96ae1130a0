package agent

import (
	"crypto/sha256"
	"fmt"
)

// actionSignature computes a deterministic signature for a dispatched
// action (name + hash of its argument).
func actionSignature(name, argument string) string {
	h := sha256.Sum256([]byte(argument))
	return fmt.Sprintf("%s:%x", name, h[:8])
}

// DetectRepeat checks whether the last windowSize action signatures follow
// a repeating pattern of length 1, 2, or 3. The model re-running identical
// searches is the most common way a run burns its turn budget; a detected
// repeat earns a warning in the next prompt.
func DetectRepeat(sigs []string, windowSize int) bool {
	if len(sigs) < windowSize {
		return false
	}
	window := sigs[len(sigs)-windowSize:]

	for patternLen := 1; patternLen <= 3; patternLen++ {
		if windowSize%patternLen != 0 {
			continue
		}
		pattern := window[:patternLen]
		allMatch := true
		for i := patternLen; i < windowSize; i += patternLen {
			for j := 0; j < patternLen; j++ {
				if window[i+j] != pattern[j] {
					allMatch = false
					break
				}
			}
			if !allMatch {
				break
			}
		}
		if allMatch {
			return true
		}
	}

	return false
}
