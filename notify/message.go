package notify

import (
	"github.com/oklog/ulid/v2"
)

// Message is a single e-mail.
type Message struct {
	ID      string `json:"-"`
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// NewMessage creates a message listing names, with a fresh ID. An empty
// subject defaults to Title.
func NewMessage(from, to, subject string, names []string) (Message, error) {
	body, err := RenderHTML(names)
	if err != nil {
		return Message{}, err
	}
	if subject == "" {
		subject = Title
	}
	return Message{
		ID:      ulid.Make().String(),
		From:    from,
		To:      to,
		Subject: subject,
		HTML:    body,
	}, nil
}
