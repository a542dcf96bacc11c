package service

// Credentials is the admin username/password pair carried inline in every
// mutating request body.
type Credentials struct {
	Username string
	Password string
}
