package services

import (
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
)

type SupportService struct {
	Repo *repository.SupportRepository
}

func NewSupportService(repo *repository.SupportRepository) *SupportService {
	return &SupportService{Repo: repo}
}

type SupportTicketIn struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// Create files a ticket; userID is nil for anonymous submissions.
func (s *SupportService) Create(userID *uint, in *SupportTicketIn) (*entity.SupportTicket, error) {
	t := &entity.SupportTicket{
		UserID:  userID,
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Subject: in.Subject,
		Message: in.Message,
		Status:  "open",
	}
	if err := s.Repo.Create(t); err != nil {
		return nil, apperr.Internal(err)
	}
	return t, nil
}

func (s *SupportService) ListForUser(userID uint) ([]entity.SupportTicket, error) {
	out, err := s.Repo.ListForUser(userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}
