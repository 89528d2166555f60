package telegram

import "quipbot/internal/core/message"

// User is a telegram account reference
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Chat identifies the conversation, group chats have negative ids
type Chat struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// WireMessage is the message payload inside an update
type WireMessage struct {
	MessageID int64  `json:"message_id"`
	Date      int64  `json:"date"`
	Chat      Chat   `json:"chat"`
	From      User   `json:"from"`
	Text      string `json:"text"`

	NewChatParticipant  *User `json:"new_chat_participant"`
	LeftChatParticipant *User `json:"left_chat_participant"`
}

// Update is one getUpdates result entry
type Update struct {
	UpdateID int64        `json:"update_id"`
	Message  *WireMessage `json:"message"`
}

// Incoming maps the wire shape to the classifier's neutral input
func (u Update) Incoming() message.Incoming {
	in := message.Incoming{UpdateID: u.UpdateID}
	m := u.Message
	if m == nil {
		return in
	}
	in.MessageID = m.MessageID
	in.Date = m.Date
	in.ChatID = m.Chat.ID
	in.ChatTitle = m.Chat.Title
	in.FromID = m.From.ID
	in.FromUsername = m.From.Username
	in.FromFirstName = m.From.FirstName
	in.FromLastName = m.From.LastName
	in.Text = m.Text
	if p := m.NewChatParticipant; p != nil {
		in.Joined = &message.Participant{ID: p.ID, Username: p.Username}
	}
	if p := m.LeftChatParticipant; p != nil {
		in.Left = &message.Participant{ID: p.ID, Username: p.Username}
	}
	return in
}
