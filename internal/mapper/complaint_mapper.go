// FILE: internal/mapper/complaint_mapper.go
package mapper

import (
	"devagency-be/internal/entity"
	"devagency-be/internal/model"
)

type ComplaintMapper struct{}

func NewComplaintMapper() *ComplaintMapper {
	return &ComplaintMapper{}
}

func (m *ComplaintMapper) ToEntity(c *model.Complaint) *entity.Complaint {
	if c == nil {
		return nil
	}
	return &entity.Complaint{
		Id:           c.Id,
		UserId:       c.UserId,
		Subject:      c.Subject,
		Message:      c.Message,
		Status:       entity.ComplaintStatus(c.Status),
		ReopenStatus: entity.ReopenStatus(c.ReopenStatus),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (m *ComplaintMapper) ToModel(c *entity.Complaint) *model.Complaint {
	if c == nil {
		return nil
	}
	return &model.Complaint{
		Id:           c.Id,
		UserId:       c.UserId,
		Subject:      c.Subject,
		Message:      c.Message,
		Status:       string(c.Status),
		ReopenStatus: string(c.ReopenStatus),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (m *ComplaintMapper) MessageToEntity(msg *model.ComplaintMessage) *entity.ComplaintMessage {
	if msg == nil {
		return nil
	}
	return &entity.ComplaintMessage{
		Id:          msg.Id,
		ComplaintId: msg.ComplaintId,
		SenderId:    msg.SenderId,
		SenderRole:  entity.UserRole(msg.SenderRole),
		Body:        msg.Body,
		CreatedAt:   msg.CreatedAt,
	}
}

func (m *ComplaintMapper) MessageToModel(msg *entity.ComplaintMessage) *model.ComplaintMessage {
	if msg == nil {
		return nil
	}
	return &model.ComplaintMessage{
		Id:          msg.Id,
		ComplaintId: msg.ComplaintId,
		SenderId:    msg.SenderId,
		SenderRole:  string(msg.SenderRole),
		Body:        msg.Body,
		CreatedAt:   msg.CreatedAt,
	}
}
