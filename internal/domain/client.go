package domain

import "time"

// Client is captured once per booking and never updated afterwards.
type Client struct {
	ID          string `gorm:"primaryKey"`
	FirstName   string
	LastName    string
	Phone       string
	BirthDate   string // 2006-01-02
	Nationality string
	// Exactly one of the two ID documents is expected, both optional.
	NationalID *string
	Passport   *string
	CreatedAt  time.Time
}

// AgeAt derives the age in full years from a 2006-01-02 birth date.
// Returns 0 when the birth date does not parse.
func AgeAt(birthDate string, today time.Time) int {
	b, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0
	}
	age := today.Year() - b.Year()
	if today.Month() < b.Month() || (today.Month() == b.Month() && today.Day() < b.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
