package webkit

import (
	"encoding/json"
	"fmt"
)

// MessageEventName is the DOM event pages listen to for host messages:
// window.addEventListener("dumber:message", e => e.detail.channel ...).
const MessageEventName = "dumber:message"

type dispatchDetail struct {
	Channel string `json:"channel"`
	Args    []any  `json:"args"`
}

// buildDispatchScript returns the JavaScript delivering channel and args to
// the page as a CustomEvent. Values are JSON encoded, never interpolated.
func buildDispatchScript(channel string, args []any) (string, error) {
	if channel == "" {
		return "", fmt.Errorf("channel cannot be empty")
	}
	if args == nil {
		args = []any{}
	}
	detail, err := json.Marshal(dispatchDetail{Channel: channel, Args: args})
	if err != nil {
		return "", fmt.Errorf("encode message for channel %q: %w", channel, err)
	}
	event, err := json.Marshal(MessageEventName)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("window.dispatchEvent(new CustomEvent(%s, {detail: %s}));", event, detail), nil
}
