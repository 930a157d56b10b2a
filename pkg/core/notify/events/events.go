package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	r "github.com/redis/go-redis/v9"

	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/core/notify"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/middleware/redis"
	"github.com/reagentlab/tracker/pkg/utils"
)

// redis pub/sub carries messages between api processes, handlers run on a bounded pool

const handlerPoolSize = 64

var (
	once   sync.Once
	center *Events
)

type Events struct {
	actions sync.Map
	subs    sync.Map
	client  *r.Client
	pool    *ants.Pool
	wait    sync.WaitGroup
}

func NewEvents() notify.MsgCenter {
	once.Do(func() {
		center = New(redis.GetClient())
	})
	return center
}

// New builds a standalone center on client, NewEvents shares one per process.
func New(client *r.Client) *Events {
	pool, err := ants.NewPool(handlerPoolSize, ants.WithNonblocking(false))
	if err != nil {
		logger.Errorf(context.Background(), "init events pool err: %+v", err)
	}
	return &Events{client: client, pool: pool}
}

func (e *Events) Registry(ctx context.Context, msgName notify.Action, handleFunc notify.HandleFunc) error {
	if _, ok := e.actions.LoadOrStore(msgName, handleFunc); ok {
		return code.NotifyActionAlreadyRegistryErr.WithMsg(string(msgName))
	}

	sub := e.client.Subscribe(ctx, string(msgName))
	// wait for the subscription so publishes right after Registry are not lost
	if _, err := sub.Receive(ctx); err != nil {
		e.actions.Delete(msgName)
		logger.Errorf(ctx, "subscribe %s err: %+v", msgName, err)
		return code.NotifySendMsgErr.WithErr(err)
	}
	e.subs.Store(msgName, sub)

	e.wait.Add(1)
	utils.SafelyGo(func() {
		defer e.wait.Done()

		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					logger.Infof(ctx, "exit redis channel name: %s", string(msgName))
					e.actions.Delete(msgName)
					return
				}
				if msg == nil {
					continue
				}
				e.dispatch(ctx, msgName, handleFunc, msg.Payload)
			case <-ctx.Done():
				logger.Infof(ctx, "exit redis channel name: %s", string(msgName))
				if err := sub.Close(); err != nil {
					logger.Errorf(ctx, "close subscription name: %s, err: %+v", msgName, err)
				}
				e.actions.Delete(msgName)
				return
			}
		}
	}, func(err error) {
		logger.Errorf(ctx, "Registry handle msg err: %+v", err)
	})
	return nil
}

func (e *Events) dispatch(ctx context.Context, msgName notify.Action, handleFunc notify.HandleFunc, payload string) {
	run := func() {
		if err := handleFunc(ctx, payload); err != nil {
			logger.Errorf(ctx, "handle redis msg fail name: %s, err: %+v", msgName, err)
		}
	}
	if e.pool == nil {
		run()
		return
	}
	if err := e.pool.Submit(run); err != nil {
		logger.Errorf(ctx, "submit redis msg name: %s err: %+v", msgName, err)
	}
}

func (e *Events) Broadcast(ctx context.Context, msg *notify.SendMsg) error {
	msg.Timestamp = time.Now().Unix()
	if msg.UUID.IsNil() {
		msg.UUID = uuid.NewV4()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return code.NotifySendMsgErr.WithErr(err)
	}
	if err := e.client.Publish(ctx, string(msg.Channel), data).Err(); err != nil {
		logger.Errorf(ctx, "send msg fail action: %s, err: %+v", msg.Channel, err)
		return code.NotifySendMsgErr.WithErr(err)
	}
	return nil
}

func (e *Events) Close(_ context.Context) error {
	e.subs.Range(func(_, v any) bool {
		if sub, ok := v.(*r.PubSub); ok {
			_ = sub.Close()
		}
		return true
	})
	e.wait.Wait()
	if e.pool != nil {
		e.pool.Release()
	}
	return nil
}
