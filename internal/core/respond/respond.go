// Package respond turns a fired job into its response payload
package respond

import (
	"math/rand"

	"quipbot/internal/core/jobspec"
)

// seam for deterministic tests
var randIntN = rand.Intn

// Select produces the response payload for a fired job
//
// phrase jobs return their single data string verbatim, random phrase
// jobs pick uniformly from their data list. anything else is
// unreachable after validation and yields the empty string
func Select(job jobspec.Job) string {
	switch job.Action {
	case jobspec.ActionPhrase:
		return job.Phrase()
	case jobspec.ActionRandomPhrase:
		if len(job.Data) == 0 {
			return ""
		}
		return job.Data[randIntN(len(job.Data))]
	}
	return ""
}
