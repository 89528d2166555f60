// Package match evaluates classified messages against job keywords
package match

import (
	"strings"

	"quipbot/internal/core/jobspec"
	"quipbot/internal/core/message"
	"quipbot/internal/core/textnorm"
)

var norm = textnorm.New()

// ContainsWord reports whether needle appears in haystack as a whole
// space delimited token, case insensitively
//
// a needle embedded inside a larger word never matches, so "cat" does
// not match "category"
func ContainsWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	h := strings.ToLower(haystack)
	n := strings.ToLower(needle)
	if !strings.Contains(h, n) {
		return false
	}
	switch {
	case h == n:
		return true
	case strings.HasPrefix(h, n+" "):
		return true
	case strings.Contains(h, " "+n+" "):
		return true
	case strings.HasSuffix(h, " "+n):
		return true
	}
	return false
}

// ResolveCommand extracts the command token from raw text
//
// the token is the first whitespace separated word with the leading
// slash removed, lowercased. an "@name" suffix addresses the command
// to a specific bot; when the suffix names someone else the command
// resolves to the empty string and never matches
func ResolveCommand(text, botName string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	tok := strings.ToLower(strings.TrimPrefix(fields[0], "/"))
	cmd, target, qualified := strings.Cut(tok, "@")
	if qualified && target != strings.ToLower(botName) {
		return ""
	}
	return cmd
}

// Matches reports whether msg satisfies job's match strategy
//
// command jobs match command messages whose resolved token is one of
// the job keywords. user text jobs match when every keyword passes the
// word boundary containment test against the normalized text. any
// other combination never matches
func Matches(job jobspec.Job, msg message.Message, botName string) bool {
	switch job.MessageType {
	case jobspec.MessageCommand:
		if msg.Kind != message.KindCommand {
			return false
		}
		cmd := ResolveCommand(msg.Text, botName)
		return cmd != "" && job.HasKeyword(cmd)

	case jobspec.MessageUserText:
		if msg.Kind != message.KindUserText {
			return false
		}
		text := norm.Normalize(msg.Text)
		for _, kw := range job.Keywords {
			if !ContainsWord(text, norm.Normalize(kw)) {
				return false
			}
		}
		return true
	}
	return false
}
