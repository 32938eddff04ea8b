package trip

import (
	"context"
	"fmt"
	"time"

	"zora/models"

	"github.com/google/uuid"
)

// Chat thread names.
const (
	ThreadClient  = "client"
	ThreadPartner = "partner"
	ThreadExpert  = "expert"
)

// AddChatMessage appends a message to one of the request's chat threads.
// Threads are append-only.
func (s *DefaultTripService) AddChatMessage(ctx context.Context, requestID, thread string, msg models.ChatMessage) (*models.TravelRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.Repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	msg.ID = "MSG-" + uuid.New().String()
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	switch thread {
	case ThreadClient:
		req.ClientChat = append(req.ClientChat, msg)
	case ThreadPartner:
		req.PartnerChat = append(req.PartnerChat, msg)
	case ThreadExpert:
		req.ExpertChat = append(req.ExpertChat, msg)
	default:
		return nil, fmt.Errorf("unknown chat thread %q", thread)
	}

	if err := s.Repo.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
