package repository

import (
	"context"
	"testing"
	"time"

	"github.com/SeakMengs/WorkshopHub/internal/model"
)

func TestConversationReturnsMessagesOldestFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	coordinator := seedUser(t, repo, "coordinator@example.com")
	instructor := seedUser(t, repo, "instructor@example.com")
	outsider := seedUser(t, repo, "outsider@example.com")
	workshop := seedWorkshop(t, repo, coordinator.ID)

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	send := func(text string, at time.Time, senderId, receiverId string) {
		t.Helper()
		createdAt := at
		_, err := repo.Chat.Send(ctx, nil, &model.ChatMessage{
			BaseModel:  model.BaseModel{CreatedAt: &createdAt},
			Message:    text,
			SenderID:   senderId,
			ReceiverID: receiverId,
			WorkshopID: workshop.ID,
		})
		if err != nil {
			t.Fatalf("Failed to send %q: %v", text, err)
		}
	}

	// Inserted out of chronological order so the result order can only come
	// from sorting on created_at, not from insertion order.
	send("second", base.Add(time.Minute), instructor.ID, coordinator.ID)
	send("first", base, coordinator.ID, instructor.ID)
	send("third", base.Add(2*time.Minute), coordinator.ID, instructor.ID)
	send("unrelated", base.Add(30*time.Second), coordinator.ID, outsider.ID)

	messages, err := repo.Chat.Conversation(ctx, nil, workshop.ID, coordinator.ID, instructor.ID)
	if err != nil {
		t.Fatalf("Conversation failed: %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(messages) != len(want) {
		t.Fatalf("Conversation returned %d messages, want %d", len(messages), len(want))
	}
	for i, text := range want {
		if messages[i].Message != text {
			t.Errorf("messages[%d].Message = %q, want %q", i, messages[i].Message, text)
		}
	}
}
