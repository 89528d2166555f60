package message

import "testing"

func TestClassifyOrder(t *testing.T) {
	cases := []struct {
		name string
		in   Incoming
		want Kind
	}{
		{"join wins over text", Incoming{Text: "/start", Joined: &Participant{ID: 7}}, KindJoin},
		{"left wins over text", Incoming{Text: "bye", Left: &Participant{ID: 7}}, KindLeft},
		{"command", Incoming{Text: "/help me"}, KindCommand},
		{"user text", Incoming{Text: "hello there"}, KindUserText},
		{"empty text is generic", Incoming{}, KindGeneric},
		{"whitespace only is generic", Incoming{Text: "   "}, KindGeneric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.in).Kind; got != tc.want {
				t.Fatalf("Classify kind = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClassifyFields(t *testing.T) {
	m := Classify(Incoming{
		UpdateID:      42,
		MessageID:     9,
		ChatID:        -100,
		FromID:        5,
		FromFirstName: "Ada",
		FromLastName:  "Lovelace",
		Text:          "/help@HelperBot arg1 arg2",
	})
	if m.Kind != KindCommand {
		t.Fatalf("kind = %v, want command", m.Kind)
	}
	if !m.IsGroup() {
		t.Fatalf("negative chat id should be a group chat")
	}
	if m.FromName != "Ada Lovelace" {
		t.Fatalf("FromName = %q", m.FromName)
	}
	if len(m.Arguments) != 2 || m.Arguments[0] != "arg1" || m.Arguments[1] != "arg2" {
		t.Fatalf("Arguments = %v", m.Arguments)
	}
	if m.LowerText != "/help@helperbot arg1 arg2" {
		t.Fatalf("LowerText = %q", m.LowerText)
	}
}

func TestClassifySubject(t *testing.T) {
	m := Classify(Incoming{Joined: &Participant{ID: 11, Username: "newbie"}})
	if m.Subject == nil || m.Subject.ID != 11 || m.Subject.Username != "newbie" {
		t.Fatalf("Subject = %+v", m.Subject)
	}
}
