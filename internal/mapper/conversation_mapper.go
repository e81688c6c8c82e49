package mapper

import (
	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/model"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ToEntity(msg *model.AiMessage) *entity.ConversationMessage {
	if msg == nil {
		return nil
	}
	return &entity.ConversationMessage{
		Id:        msg.Id,
		UserId:    msg.UserId,
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ConversationMapper) ToModel(msg *entity.ConversationMessage) *model.AiMessage {
	if msg == nil {
		return nil
	}
	return &model.AiMessage{
		Id:        msg.Id,
		UserId:    msg.UserId,
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ConversationMapper) ToEntities(msgs []*model.AiMessage) []*entity.ConversationMessage {
	entities := make([]*entity.ConversationMessage, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.ToEntity(msg)
	}
	return entities
}
