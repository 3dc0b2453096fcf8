package domain

// PlaceholderAvatarURL is shown when a candidate has no avatar.
const PlaceholderAvatarURL = "https://placehold.co/400"

// NotAvailable is shown in place of a missing email address.
const NotAvailable = "N/A"

// Card is the display form of a candidate.
type Card struct {
	AvatarURL  string
	AvatarAlt  string
	Name       string
	Login      string
	Location   string
	Email      string
	EmailLink  string // empty when there is no email
	ProfileURL string
	Company    string
	Summary    bool // detail not resolved yet
}

// NewCard builds the card for c.
func NewCard(c Candidate) Card {
	card := Card{
		AvatarURL:  c.AvatarURL,
		AvatarAlt:  c.Name,
		Name:       c.Name,
		Login:      c.Login,
		Location:   c.Location,
		Email:      NotAvailable,
		ProfileURL: c.HTMLURL,
		Company:    c.Company,
		Summary:    !c.Detailed,
	}
	if card.AvatarURL == "" {
		card.AvatarURL = PlaceholderAvatarURL
	}
	if card.AvatarAlt == "" {
		card.AvatarAlt = "No image available"
	}
	if c.Email != "" {
		card.Email = c.Email
		card.EmailLink = "mailto:" + c.Email
	}
	return card
}
