package adapter

import (
	"fmt"
	"regexp"
)

// Notifier is the interface the alerting code expects.
type Notifier interface {
	Send(title, message string) []string
}

type EmailNotifier struct {
	AdminEmail string
}

func (n EmailNotifier) Send(title, message string) []string {
	return []string{fmt.Sprintf("Sent email with title %q to %q that says %q.", title, n.AdminEmail, message)}
}

// SlackAPI is a third-party client with an API of its own.
type SlackAPI struct {
	Login  string
	APIKey string
}

func (s *SlackAPI) LogIn() string {
	return fmt.Sprintf("Logged in to a slack account %q.", s.Login)
}

func (s *SlackAPI) SendMessage(chatID, message string) string {
	return fmt.Sprintf("Posted following message into the %q chat: %q.", chatID, message)
}

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// SlackNotifier adapts SlackAPI to Notifier.
type SlackNotifier struct {
	Slack  *SlackAPI
	ChatID string
}

func (n SlackNotifier) Send(title, message string) []string {
	slackMessage := "#" + title + "# " + htmlTag.ReplaceAllString(message, "")
	return []string{
		n.Slack.LogIn(),
		n.Slack.SendMessage(n.ChatID, slackMessage),
	}
}
