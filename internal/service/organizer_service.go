package service

import (
	"github.com/innoquest/hackathon-backend/internal/domain"
)

type OrganizerService interface {
	Categories() []domain.OrganizerCategory
	AddCategory(creds Credentials, name, color string) ([]domain.OrganizerCategory, error)
	UpdateCategory(creds Credentials, categoryID, name, color string) ([]domain.OrganizerCategory, error)
	DeleteCategory(creds Credentials, categoryID string) ([]domain.OrganizerCategory, error)
	AddMember(creds Credentials, categoryID, name, role string) ([]domain.OrganizerCategory, error)
	UpdateMember(creds Credentials, categoryID, memberID, name, role string) ([]domain.OrganizerCategory, error)
	DeleteMember(creds Credentials, categoryID, memberID string) ([]domain.OrganizerCategory, error)
	Reset(creds Credentials) ([]domain.OrganizerCategory, error)
}
