package service

import (
	"context"
	"encoding/json"

	mq "voteboard/pkg/rocketmq"
	"voteboard/types"

	"github.com/apache/rocketmq-client-go/v2"
)

var _ INotifyService = (*NotifyService)(nil)

// 状态变更通知的消息主题, 下游消费者负责邮件/站内信投递
const TopicStatusChanged = "idea-status-changed"

type INotifyService interface {
	StatusChanged(ctx context.Context, event *types.StatusChangedEvent) error
}

// NotifyService 把状态变更事件投递到消息队列
type NotifyService struct {
	Producer rocketmq.Producer
}

func (s *NotifyService) StatusChanged(ctx context.Context, event *types.StatusChangedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return mq.SendMsg(ctx, s.Producer, TopicStatusChanged, body)
}
