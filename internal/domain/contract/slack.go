package contract

import "github.com/slack-go/slack"

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// GetUserInfo retrieves user information from Slack
	GetUserInfo(userID string) (*slack.User, error)

	// GetUsers retrieves the workspace user list, used to resolve display
	// names extracted from game messages
	GetUsers(options ...slack.GetUsersOption) ([]slack.User, error)

	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// AddReaction marks a message, used to flag unhandled game messages
	AddReaction(name string, item slack.ItemRef) error

	// GetConversationReplies fetches a thread, used to resolve which user's
	// command a game bot reply answers
	GetConversationReplies(params *slack.GetConversationRepliesParameters) ([]slack.Message, bool, string, error)
}
