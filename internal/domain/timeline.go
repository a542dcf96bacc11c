package domain

type PhaseStatus string

const (
	PhaseUpcoming  PhaseStatus = "upcoming"
	PhaseCurrent   PhaseStatus = "current"
	PhaseCompleted PhaseStatus = "completed"
)

func (s PhaseStatus) Valid() bool {
	switch s {
	case PhaseUpcoming, PhaseCurrent, PhaseCompleted:
		return true
	}
	return false
}

type TimelinePhase struct {
	Phase       string
	Description string
	Status      PhaseStatus
	Progress    int
}

// ApplyPhaseUpdate writes status/progress (either may be nil) to phases[i]
// and runs the cascade over the sequence in place:
//
//   - completed nudges only the immediate next phase from upcoming to
//     current, never further;
//   - current retroactively completes every earlier phase (progress 100) and
//     forces every later phase back to upcoming.
//
// Intentional asymmetry: completing a phase only promotes its immediate
// successor, while marking one current rewrites the whole sequence.
// Progress is clamped to [0,100].
func ApplyPhaseUpdate(phases []TimelinePhase, i int, status *PhaseStatus, progress *int) {
	if status != nil {
		phases[i].Status = *status
	}
	if progress != nil {
		p := *progress
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		phases[i].Progress = p
	}

	if status == nil {
		return
	}

	switch *status {
	case PhaseCompleted:
		if i < len(phases)-1 && phases[i+1].Status == PhaseUpcoming {
			phases[i+1].Status = PhaseCurrent
		}
	case PhaseCurrent:
		for j := 0; j < i; j++ {
			if phases[j].Status != PhaseCompleted {
				phases[j].Status = PhaseCompleted
				phases[j].Progress = 100
			}
		}
		for j := i + 1; j < len(phases); j++ {
			if phases[j].Status != PhaseUpcoming {
				phases[j].Status = PhaseUpcoming
			}
		}
	}
}

// SeedTimeline returns the fixed 5-phase hackathon lifecycle, all upcoming.
func SeedTimeline() []TimelinePhase {
	return []TimelinePhase{
		{
			Phase:       "Registration",
			Description: "Teams register via the official portal.",
			Status:      PhaseUpcoming,
			Progress:    0,
		},
		{
			Phase:       "Idea Submission",
			Description: "Upload your project brief or pitch deck.",
			Status:      PhaseUpcoming,
			Progress:    0,
		},
		{
			Phase:       "Hack Submission",
			Description: "Submit your working demo/prototype + presentation.",
			Status:      PhaseUpcoming,
			Progress:    0,
		},
		{
			Phase:       "Review & Judging",
			Description: "Judges review entries via a structured digital scorecard.",
			Status:      PhaseUpcoming,
			Progress:    0,
		},
		{
			Phase:       "Results Announcement",
			Description: "Scores & feedback published, winners announced online.",
			Status:      PhaseUpcoming,
			Progress:    0,
		},
	}
}
