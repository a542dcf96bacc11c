package domain

const DefaultCountdownMessage = "Countdown to Launch"

type Countdown struct {
	TargetDate    string
	TargetTime    string
	IsActive      bool
	CustomMessage string
}

// SeedCountdown returns the inactive "not configured" default.
func SeedCountdown() Countdown {
	return Countdown{
		TargetDate:    "",
		TargetTime:    "",
		IsActive:      false,
		CustomMessage: DefaultCountdownMessage,
	}
}
