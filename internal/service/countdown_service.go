package service

import (
	"github.com/innoquest/hackathon-backend/internal/domain"
)

// CountdownUpdate carries only the fields the caller supplied. A nil or
// empty-string date/time leaves the stored value alone; CustomMessage is
// written whenever the field is present, empty included.
type CountdownUpdate struct {
	TargetDate    *string
	TargetTime    *string
	IsActive      *bool
	CustomMessage *string
}

type CountdownService interface {
	Get() domain.Countdown
	Update(creds Credentials, update CountdownUpdate) (domain.Countdown, error)
	Reset(creds Credentials) (domain.Countdown, error)
}
