package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/models"
)

// Outbound webhook notifications for the join-request lifecycle. Delivery is
// best-effort: a failed post is logged by the caller, never surfaced to the
// requester.

type WebhookEvent struct {
	Event     string `json:"event"`
	Table     string `json:"table,omitempty"`
	Story     string `json:"story,omitempty"`
	Username  string `json:"username"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func webhookURL() string {
	return os.Getenv("NOTIFY_WEBHOOK_URL")
}

// Webhook delivery is synchronous with the request that triggered it, so a
// stalled endpoint must not hold that response open.
var webhookClient = &http.Client{Timeout: 10 * time.Second}

// NotifyJoinRequestCreated tells the table master someone asked to join,
// honoring the master's notify_on_join_request flag.
func NotifyJoinRequestCreated(master models.User, requester models.User, table models.GameTable) error {
	if !master.NotifyOnJoinRequest {
		return nil
	}

	return sendWebhook(WebhookEvent{
		Event:     "join_request.created",
		Table:     table.Title,
		Username:  master.Username,
		Message:   fmt.Sprintf("%s asked to join your table '%s'", requester.Username, table.Title),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// NotifyRequestApproved tells the requester they are in, honoring the
// requester's notify_on_request_approved flag.
func NotifyRequestApproved(player models.User, table models.GameTable) error {
	if !player.NotifyOnRequestApproved {
		return nil
	}

	return sendWebhook(WebhookEvent{
		Event:     "join_request.approved",
		Table:     table.Title,
		Username:  player.Username,
		Message:   fmt.Sprintf("Your request to join '%s' was approved", table.Title),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// NotifyStoryCreated records a new-story event for the creator, honoring the
// notify_on_new_story flag.
func NotifyStoryCreated(creator models.User, story models.Story) error {
	if !creator.NotifyOnNewStory {
		return nil
	}

	return sendWebhook(WebhookEvent{
		Event:     "story.created",
		Story:     story.Title,
		Username:  creator.Username,
		Message:   fmt.Sprintf("Story '%s' was created", story.Title),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func sendWebhook(event WebhookEvent) error {
	url := webhookURL()

	if url == "" {
		return nil
	}

	body, err := json.Marshal(event)

	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	resp, err := webhookClient.Post(url, "application/json", bytes.NewBuffer(body))

	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
