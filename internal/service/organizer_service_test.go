package service

import (
	"testing"

	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrganizerService() OrganizerService {
	return NewOrganizerService(testGate(), memstore.NewOrganizerStore())
}

func categoryByID(t *testing.T, categories []domain.OrganizerCategory, id string) domain.OrganizerCategory {
	t.Helper()
	for _, cat := range categories {
		if cat.ID == id {
			return cat
		}
	}
	t.Fatalf("category %q not found", id)
	return domain.OrganizerCategory{}
}

func TestOrganizerService_AddCategory(t *testing.T) {
	t.Run("derives the id from the name", func(t *testing.T) {
		svc := newOrganizerService()

		categories, err := svc.AddCategory(adminCreds(), "Media & Press", "teal")

		require.NoError(t, err)
		cat := categoryByID(t, categories, "mediapress")
		assert.Equal(t, "Media & Press", cat.Name)
		assert.Equal(t, "teal", cat.Color)
		assert.Empty(t, cat.Members)
		assert.NotNil(t, cat.Members)
	})

	t.Run("rejects an id collision against the seed", func(t *testing.T) {
		svc := newOrganizerService()

		// "Event Coordinators" normalizes to the seeded eventcoordinators id.
		_, err := svc.AddCategory(adminCreds(), "Event Coordinators", "blue")

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Category with this name already exists", domainErr.Message)
	})

	t.Run("rejects an unknown color", func(t *testing.T) {
		svc := newOrganizerService()

		_, err := svc.AddCategory(adminCreds(), "Sponsors", "magenta")

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Invalid category color", domainErr.Message)
	})

	t.Run("rejects a name with no letters or digits", func(t *testing.T) {
		svc := newOrganizerService()

		_, err := svc.AddCategory(adminCreds(), "!!!", "blue")

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION", domainErr.Code)
	})
}

func TestOrganizerService_UpdateCategory(t *testing.T) {
	t.Run("renaming re-derives the id", func(t *testing.T) {
		svc := newOrganizerService()

		categories, err := svc.UpdateCategory(adminCreds(), "marketingTeam", "Outreach Team", "pink")

		require.NoError(t, err)
		cat := categoryByID(t, categories, "outreachteam")
		assert.Equal(t, "Outreach Team", cat.Name)
		assert.Equal(t, "pink", cat.Color)
		for _, c := range categories {
			assert.NotEqual(t, "marketingTeam", c.ID)
		}
	})

	t.Run("rejects a rename that collides with another category", func(t *testing.T) {
		svc := newOrganizerService()

		_, err := svc.AddCategory(adminCreds(), "Sponsors", "orange")
		require.NoError(t, err)

		_, err = svc.UpdateCategory(adminCreds(), "marketingTeam", "Sponsors!", "red")

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Category with this name already exists", domainErr.Message)
	})

	t.Run("unknown category is not found", func(t *testing.T) {
		svc := newOrganizerService()

		_, err := svc.UpdateCategory(adminCreds(), "nope", "Whatever", "blue")

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}

func TestOrganizerService_DeleteCategory(t *testing.T) {
	svc := newOrganizerService()

	categories, err := svc.DeleteCategory(adminCreds(), "facultyCoordinators")

	require.NoError(t, err)
	assert.Len(t, categories, 3)
	for _, cat := range categories {
		assert.NotEqual(t, "facultyCoordinators", cat.ID)
	}

	_, err = svc.DeleteCategory(adminCreds(), "facultyCoordinators")
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestOrganizerService_Members(t *testing.T) {
	t.Run("add assigns a fresh member id", func(t *testing.T) {
		svc := newOrganizerService()

		categories, err := svc.AddMember(adminCreds(), "technicalSupport", "Ada", "Infra")

		require.NoError(t, err)
		cat := categoryByID(t, categories, "technicalSupport")
		require.Len(t, cat.Members, 3)
		added := cat.Members[2]
		assert.Equal(t, "Ada", added.Name)
		assert.Equal(t, "Infra", added.Role)
		assert.NotEmpty(t, added.ID)
	})

	t.Run("update rewrites an existing member in place", func(t *testing.T) {
		svc := newOrganizerService()

		categories, err := svc.UpdateMember(adminCreds(), "eventCoordinators", "1", "Grace", "Lead Coordinator")

		require.NoError(t, err)
		cat := categoryByID(t, categories, "eventCoordinators")
		assert.Equal(t, "Grace", cat.Members[0].Name)
		assert.Equal(t, "Lead Coordinator", cat.Members[0].Role)
		assert.Equal(t, "1", cat.Members[0].ID)
	})

	t.Run("unknown member is not found", func(t *testing.T) {
		svc := newOrganizerService()

		_, err := svc.UpdateMember(adminCreds(), "eventCoordinators", "999", "X", "Y")

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Member not found", domainErr.Message)
	})

	t.Run("delete removes exactly one member", func(t *testing.T) {
		svc := newOrganizerService()

		categories, err := svc.DeleteMember(adminCreds(), "eventCoordinators", "2")

		require.NoError(t, err)
		cat := categoryByID(t, categories, "eventCoordinators")
		require.Len(t, cat.Members, 1)
		assert.Equal(t, "1", cat.Members[0].ID)
	})
}

func TestOrganizerService_Reset(t *testing.T) {
	svc := newOrganizerService()

	_, err := svc.DeleteCategory(adminCreds(), "marketingTeam")
	require.NoError(t, err)
	_, err = svc.AddCategory(adminCreds(), "Sponsors", "orange")
	require.NoError(t, err)

	categories, err := svc.Reset(adminCreds())

	require.NoError(t, err)
	assert.Equal(t, domain.SeedOrganizers(), categories)
}
