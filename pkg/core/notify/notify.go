package notify

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common/uuid"
)

type Action string

const (
	// ReagentRequest carries request lifecycle events to the people involved.
	ReagentRequest Action = "reagent-request"
)

type Event string

const (
	RequestCreated   Event = "request_created"
	RequestAnswered  Event = "request_answered"
	RequestWithdrawn Event = "request_withdrawn"
)

type SendMsg struct {
	Channel Action `json:"action"`
	Event   Event  `json:"event"`
	// Recipients are the user uuids the message is fanned out to.
	Recipients []string  `json:"recipients"`
	Data       any       `json:"data"`
	UUID       uuid.UUID `json:"uuid"`
	Timestamp  int64     `json:"timestamp"`
}

type HandleFunc func(ctx context.Context, msg string) error

type MsgCenter interface {
	Registry(ctx context.Context, msgName Action, handleFunc HandleFunc) error
	Broadcast(ctx context.Context, msg *SendMsg) error
	Close(ctx context.Context) error
}
