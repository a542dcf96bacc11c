package domain

type OrganizerMember struct {
	ID   string
	Name string
	Role string
}

type OrganizerCategory struct {
	ID      string
	Name    string
	Color   string
	Members []OrganizerMember
}

// CategoryColors is the fixed palette admins can pick from.
var CategoryColors = map[string]bool{
	"blue":   true,
	"green":  true,
	"amber":  true,
	"pink":   true,
	"purple": true,
	"red":    true,
	"teal":   true,
	"orange": true,
}

// SeedOrganizers returns the fixed 4-category roster with placeholder members.
// The seed keeps the historical camelCase ids; ids for categories created at
// runtime come from DeriveCategoryID instead.
func SeedOrganizers() []OrganizerCategory {
	return []OrganizerCategory{
		{
			ID:    "eventCoordinators",
			Name:  "Event Coordinators",
			Color: "blue",
			Members: []OrganizerMember{
				{ID: "1", Name: "[Coordinator Name 1]", Role: ""},
				{ID: "2", Name: "[Coordinator Name 2]", Role: ""},
			},
		},
		{
			ID:    "facultyCoordinators",
			Name:  "Faculty Coordinators",
			Color: "green",
			Members: []OrganizerMember{
				{ID: "3", Name: "[Faculty Name 1]", Role: "Technical Mentor"},
				{ID: "4", Name: "[Faculty Name 2]", Role: "Innovation Guide"},
			},
		},
		{
			ID:    "technicalSupport",
			Name:  "Technical & Logistics Support",
			Color: "amber",
			Members: []OrganizerMember{
				{ID: "5", Name: "[Name]", Role: "Registration & Submission System"},
				{ID: "6", Name: "[Name]", Role: "Scheduling & Platform Management"},
			},
		},
		{
			ID:    "marketingTeam",
			Name:  "Marketing & Outreach Team",
			Color: "pink",
			Members: []OrganizerMember{
				{ID: "7", Name: "[Name]", Role: "Social Media Promotions"},
				{ID: "8", Name: "[Name]", Role: "Outreach & Partnerships"},
			},
		},
	}
}

// DeriveCategoryID lowercases the name and strips every non-alphanumeric
// character. "Event Coordinators" derives to "eventcoordinators".
func DeriveCategoryID(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+('a'-'A'))
		}
	}
	return string(out)
}
