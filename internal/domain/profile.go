package domain

// Profile is the minimal identity record of a booking participant.
// Fetched read-only from the profile stores and used only to compose
// confirmation emails.
type Profile struct {
	Email       string
	DisplayName string
}

// CanBeNotified returns true if the profile carries an email address
// a confirmation can be delivered to.
func (p *Profile) CanBeNotified() bool {
	return p.Email != ""
}
