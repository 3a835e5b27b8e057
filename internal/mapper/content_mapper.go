// FILE: internal/mapper/content_mapper.go
package mapper

import (
	"devagency-be/internal/entity"
	"devagency-be/internal/model"
)

type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func (m *ContentMapper) TeamMemberToEntity(t *model.TeamMember) *entity.TeamMember {
	if t == nil {
		return nil
	}
	return &entity.TeamMember{
		Id: t.Id, Name: t.Name, Role: t.Role, PhotoURL: t.PhotoURL, Bio: t.Bio,
		SortOrder: t.SortOrder, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt,
	}
}

func (m *ContentMapper) TeamMemberToModel(t *entity.TeamMember) *model.TeamMember {
	if t == nil {
		return nil
	}
	return &model.TeamMember{
		Id: t.Id, Name: t.Name, Role: t.Role, PhotoURL: t.PhotoURL, Bio: t.Bio,
		SortOrder: t.SortOrder, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt,
	}
}

func (m *ContentMapper) ServiceToEntity(s *model.Service) *entity.Service {
	if s == nil {
		return nil
	}
	return &entity.Service{
		Id: s.Id, Title: s.Title, Description: s.Description, Icon: s.Icon,
		SortOrder: s.SortOrder, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	}
}

func (m *ContentMapper) ServiceToModel(s *entity.Service) *model.Service {
	if s == nil {
		return nil
	}
	return &model.Service{
		Id: s.Id, Title: s.Title, Description: s.Description, Icon: s.Icon,
		SortOrder: s.SortOrder, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	}
}

func (m *ContentMapper) SiteFeatureToEntity(f *model.SiteFeature) *entity.SiteFeature {
	if f == nil {
		return nil
	}
	return &entity.SiteFeature{
		Id: f.Id, Title: f.Title, Description: f.Description, Icon: f.Icon,
		SortOrder: f.SortOrder, CreatedAt: f.CreatedAt, UpdatedAt: f.UpdatedAt,
	}
}

func (m *ContentMapper) SiteFeatureToModel(f *entity.SiteFeature) *model.SiteFeature {
	if f == nil {
		return nil
	}
	return &model.SiteFeature{
		Id: f.Id, Title: f.Title, Description: f.Description, Icon: f.Icon,
		SortOrder: f.SortOrder, CreatedAt: f.CreatedAt, UpdatedAt: f.UpdatedAt,
	}
}

func (m *ContentMapper) PaymentOptionToEntity(p *model.PaymentOption) *entity.PaymentOption {
	if p == nil {
		return nil
	}
	return &entity.PaymentOption{
		Id: p.Id, Name: p.Name, Method: p.Method, AccountId: p.AccountId,
		QRImageURL: p.QRImageURL, Instructions: p.Instructions, IsActive: p.IsActive,
		CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

func (m *ContentMapper) PaymentOptionToModel(p *entity.PaymentOption) *model.PaymentOption {
	if p == nil {
		return nil
	}
	return &model.PaymentOption{
		Id: p.Id, Name: p.Name, Method: p.Method, AccountId: p.AccountId,
		QRImageURL: p.QRImageURL, Instructions: p.Instructions, IsActive: p.IsActive,
		CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

func (m *ContentMapper) NewsletterSubscriberToEntity(n *model.NewsletterSubscriber) *entity.NewsletterSubscriber {
	if n == nil {
		return nil
	}
	return &entity.NewsletterSubscriber{Id: n.Id, Email: n.Email, CreatedAt: n.CreatedAt}
}

func (m *ContentMapper) NewsletterSubscriberToModel(n *entity.NewsletterSubscriber) *model.NewsletterSubscriber {
	if n == nil {
		return nil
	}
	return &model.NewsletterSubscriber{Id: n.Id, Email: n.Email, CreatedAt: n.CreatedAt}
}

func (m *ContentMapper) ContactMessageToEntity(c *model.ContactMessage) *entity.ContactMessage {
	if c == nil {
		return nil
	}
	return &entity.ContactMessage{Id: c.Id, Name: c.Name, Email: c.Email, Message: c.Message, CreatedAt: c.CreatedAt}
}

func (m *ContentMapper) ContactMessageToModel(c *entity.ContactMessage) *model.ContactMessage {
	if c == nil {
		return nil
	}
	return &model.ContactMessage{Id: c.Id, Name: c.Name, Email: c.Email, Message: c.Message, CreatedAt: c.CreatedAt}
}
