// Package message classifies inbound chat updates into a closed set of kinds
//
// classification is an explicit ordered decision, evaluated once per update:
// join beats left beats command beats user text, anything else is generic
package message

import "strings"

// Kind enumerates the message variants the engine understands
type Kind int

// Message kinds in classification order
const (
	KindGeneric Kind = iota
	KindJoin
	KindLeft
	KindCommand
	KindUserText
)

// String returns a stable lowercase name for logs
func (k Kind) String() string {
	switch k {
	case KindJoin:
		return "join"
	case KindLeft:
		return "left"
	case KindCommand:
		return "command"
	case KindUserText:
		return "user_text"
	default:
		return "generic"
	}
}

// Participant identifies a chat member referenced by a join or left event
type Participant struct {
	ID       int64
	Username string
}

// Incoming is the neutral pre-classified shape handed over by the transport
type Incoming struct {
	UpdateID  int64
	MessageID int64
	Date      int64
	ChatID    int64
	ChatTitle string

	FromID        int64
	FromUsername  string
	FromFirstName string
	FromLastName  string

	Text string

	// exactly one of these set marks a membership event
	Joined *Participant
	Left   *Participant
}

// Message is one classified inbound message
type Message struct {
	Kind Kind

	UpdateID  int64
	MessageID int64
	Date      int64
	ChatID    int64
	ChatTitle string

	FromID       int64
	FromUsername string
	FromName     string

	// Text is the payload as received, LowerText its lowercased form
	Text      string
	LowerText string

	// Subject is set for join and left kinds only
	Subject *Participant

	// Arguments are the whitespace separated tokens after a command token
	Arguments []string
}

// IsGroup reports whether the message came from a multi party chat
// group chat identifiers are negative, a platform convention kept as is
func (m Message) IsGroup() bool { return m.ChatID < 0 }

// Classify assigns in to exactly one Kind and extracts its fields
func Classify(in Incoming) Message {
	m := Message{
		Kind:      KindGeneric,
		UpdateID:  in.UpdateID,
		MessageID: in.MessageID,
		Date:      in.Date,
		ChatID:    in.ChatID,
		ChatTitle: in.ChatTitle,

		FromID:       in.FromID,
		FromUsername: in.FromUsername,
		FromName:     strings.TrimSpace(in.FromFirstName + " " + in.FromLastName),

		Text:      in.Text,
		LowerText: strings.ToLower(in.Text),
	}

	switch {
	case in.Joined != nil:
		m.Kind = KindJoin
		m.Subject = in.Joined
	case in.Left != nil:
		m.Kind = KindLeft
		m.Subject = in.Left
	case strings.HasPrefix(in.Text, "/"):
		m.Kind = KindCommand
		if fields := strings.Fields(in.Text); len(fields) > 1 {
			m.Arguments = fields[1:]
		}
	case strings.TrimSpace(in.Text) != "":
		m.Kind = KindUserText
	}

	return m
}
