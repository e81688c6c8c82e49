package mapper

import (
	"encoding/json"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/model"

	"gorm.io/datatypes"
)

type ActionAuditMapper struct{}

func NewActionAuditMapper() *ActionAuditMapper {
	return &ActionAuditMapper{}
}

func (m *ActionAuditMapper) ToEntity(a *model.AiActionAudit) *entity.ActionAudit {
	if a == nil {
		return nil
	}
	return &entity.ActionAudit{
		Id:           a.Id,
		UserId:       a.UserId,
		TurnId:       a.TurnId,
		Position:     a.Position,
		Type:         a.Type,
		Args:         decodeJSONMap(a.Args),
		Result:       decodeJSONMap(a.Result),
		ErrorCode:    a.ErrorCode,
		ErrorMessage: a.ErrorMessage,
		CreatedAt:    a.CreatedAt,
	}
}

func (m *ActionAuditMapper) ToModel(a *entity.ActionAudit) (*model.AiActionAudit, error) {
	if a == nil {
		return nil, nil
	}
	args, err := encodeJSONMap(a.Args)
	if err != nil {
		return nil, err
	}
	result, err := encodeJSONMap(a.Result)
	if err != nil {
		return nil, err
	}
	return &model.AiActionAudit{
		Id:           a.Id,
		UserId:       a.UserId,
		TurnId:       a.TurnId,
		Position:     a.Position,
		Type:         a.Type,
		Args:         args,
		Result:       result,
		ErrorCode:    a.ErrorCode,
		ErrorMessage: a.ErrorMessage,
		CreatedAt:    a.CreatedAt,
	}, nil
}

func (m *ActionAuditMapper) ToEntities(rows []*model.AiActionAudit) []*entity.ActionAudit {
	entities := make([]*entity.ActionAudit, len(rows))
	for i, r := range rows {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

func encodeJSONMap(v map[string]interface{}) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func decodeJSONMap(raw datatypes.JSON) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
