package service

type RegistrationLinkService interface {
	Get() string
	Update(creds Credentials, link string) (string, error)
	Reset(creds Credentials) (string, error)
}
