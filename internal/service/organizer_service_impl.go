package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/innoquest/hackathon-backend/internal/auth"
	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/memstore"
)

type organizerService struct {
	gate  *auth.Gate
	store *memstore.OrganizerStore
}

func NewOrganizerService(gate *auth.Gate, store *memstore.OrganizerStore) OrganizerService {
	return &organizerService{gate: gate, store: store}
}

func (s *organizerService) Categories() []domain.OrganizerCategory {
	return s.store.Snapshot()
}

func (s *organizerService) AddCategory(creds Credentials, name, color string) ([]domain.OrganizerCategory, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(color) == "" {
		return nil, domain.NewValidationError("Category name and color are required")
	}
	color = strings.TrimSpace(color)
	if !domain.CategoryColors[color] {
		return nil, domain.NewValidationError("Invalid category color")
	}

	id := domain.DeriveCategoryID(name)
	if id == "" {
		return nil, domain.NewValidationError("Category name must contain letters or digits")
	}

	categories := s.store.Snapshot()
	for _, cat := range categories {
		if cat.ID == id {
			return nil, domain.NewValidationError("Category with this name already exists")
		}
	}

	categories = append(categories, domain.OrganizerCategory{
		ID:      id,
		Name:    strings.TrimSpace(name),
		Color:   color,
		Members: []domain.OrganizerMember{},
	})
	s.store.Replace(categories)

	return categories, nil
}

func (s *organizerService) UpdateCategory(creds Credentials, categoryID, name, color string) ([]domain.OrganizerCategory, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}
	if categoryID == "" || strings.TrimSpace(name) == "" || strings.TrimSpace(color) == "" {
		return nil, domain.NewValidationError("Category ID, name, and color are required")
	}
	color = strings.TrimSpace(color)
	if !domain.CategoryColors[color] {
		return nil, domain.NewValidationError("Invalid category color")
	}

	categories := s.store.Snapshot()
	idx := -1
	for i, cat := range categories {
		if cat.ID == categoryID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.NewNotFoundError("Category")
	}

	// Renaming re-derives the id; collision against every other category is
	// rejected, renaming to the same normalized form is fine. Stale
	// references to the old id break after a rename.
	if name != categories[idx].Name {
		newID := domain.DeriveCategoryID(name)
		if newID == "" {
			return nil, domain.NewValidationError("Category name must contain letters or digits")
		}
		for i, cat := range categories {
			if i != idx && cat.ID == newID {
				return nil, domain.NewValidationError("Category with this name already exists")
			}
		}
		categories[idx].ID = newID
	}
	categories[idx].Name = strings.TrimSpace(name)
	categories[idx].Color = color
	s.store.Replace(categories)

	return categories, nil
}

func (s *organizerService) DeleteCategory(creds Credentials, categoryID string) ([]domain.OrganizerCategory, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}
	if categoryID == "" {
		return nil, domain.NewValidationError("Category ID is required")
	}

	categories := s.store.Snapshot()
	kept := categories[:0]
	for _, cat := range categories {
		if cat.ID != categoryID {
			kept = append(kept, cat)
		}
	}
	if len(kept) == len(categories) {
		return nil, domain.NewNotFoundError("Category")
	}
	// Members go down with their category; there is nowhere else they live.
	s.store.Replace(kept)

	return s.store.Snapshot(), nil
}

func (s *organizerService) AddMember(creds Credentials, categoryID, name, role string) ([]domain.OrganizerCategory, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}
	if categoryID == "" || strings.TrimSpace(name) == "" || strings.TrimSpace(role) == "" {
		return nil, domain.NewValidationError("Category ID, name, and role are required")
	}

	categories := s.store.Snapshot()
	idx := findCategory(categories, categoryID)
	if idx == -1 {
		return nil, domain.NewNotFoundError("Category")
	}

	categories[idx].Members = append(categories[idx].Members, domain.OrganizerMember{
		ID:   uuid.NewString(),
		Name: strings.TrimSpace(name),
		Role: strings.TrimSpace(role),
	})
	s.store.Replace(categories)

	return categories, nil
}

func (s *organizerService) UpdateMember(creds Credentials, categoryID, memberID, name, role string) ([]domain.OrganizerCategory, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}
	if categoryID == "" || memberID == "" || strings.TrimSpace(name) == "" || strings.TrimSpace(role) == "" {
		return nil, domain.NewValidationError("Category ID, member ID, name, and role are required")
	}

	categories := s.store.Snapshot()
	idx := findCategory(categories, categoryID)
	if idx == -1 {
		return nil, domain.NewNotFoundError("Category")
	}

	found := false
	for i, member := range categories[idx].Members {
		if member.ID == memberID {
			categories[idx].Members[i] = domain.OrganizerMember{
				ID:   memberID,
				Name: strings.TrimSpace(name),
				Role: strings.TrimSpace(role),
			}
			found = true
			break
		}
	}
	if !found {
		return nil, domain.NewNotFoundError("Member")
	}
	s.store.Replace(categories)

	return categories, nil
}

func (s *organizerService) DeleteMember(creds Credentials, categoryID, memberID string) ([]domain.OrganizerCategory, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}
	if categoryID == "" || memberID == "" {
		return nil, domain.NewValidationError("Category ID and member ID are required")
	}

	categories := s.store.Snapshot()
	idx := findCategory(categories, categoryID)
	if idx == -1 {
		return nil, domain.NewNotFoundError("Category")
	}

	members := categories[idx].Members
	kept := members[:0]
	for _, member := range members {
		if member.ID != memberID {
			kept = append(kept, member)
		}
	}
	if len(kept) == len(members) {
		return nil, domain.NewNotFoundError("Member")
	}
	categories[idx].Members = kept
	s.store.Replace(categories)

	return s.store.Snapshot(), nil
}

func (s *organizerService) Reset(creds Credentials) ([]domain.OrganizerCategory, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}
	return s.store.Reset(), nil
}

func findCategory(categories []domain.OrganizerCategory, id string) int {
	for i, cat := range categories {
		if cat.ID == id {
			return i
		}
	}
	return -1
}
