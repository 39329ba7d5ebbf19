package domain

import "time"

type Gender int

const (
	GenderUnknown Gender = iota
	GenderMale
	GenderFemale
)

// ParseGender maps the dataset's single-character code.
func ParseGender(code string) Gender {
	switch code {
	case "m", "M":
		return GenderMale
	case "f", "F":
		return GenderFemale
	}
	return GenderUnknown
}

func (g Gender) Code() string {
	switch g {
	case GenderMale:
		return "m"
	case GenderFemale:
		return "f"
	}
	return ""
}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	}
	return "Unknown"
}

func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.Code()), nil
}

// Unknown is the placeholder for absent categorical values.
const Unknown = "Unknown"

type Profile struct {
	ID    int  `json:"id"`
	HasID bool `json:"-"`

	FullName  string `json:"fullname"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Gender    Gender `json:"gender"`

	CountryName   string `json:"country_name"`
	ContinentName string `json:"continent_name"`

	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	// Age is zero when DateOfBirth is absent, use HasAge to tell the cases apart.
	Age float64 `json:"age"`

	BattingStyle string `json:"battingstyle"`
	BowlingStyle string `json:"bowlingstyle"`
	Position     string `json:"position"`
	Roles        Roles  `json:"roles"`

	ImagePath string `json:"image_path,omitempty"`
}

func (p Profile) HasAge() bool {
	return p.DateOfBirth != nil
}

func (p Profile) HasImage() bool {
	return p.ImagePath != ""
}
