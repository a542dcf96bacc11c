package domain

// DefaultRegistrationLink is the reset target for the registration link.
const DefaultRegistrationLink = "https://forms.google.com/example"
