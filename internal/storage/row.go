package storage

// Canonical column names of the player dataset.
const (
	ColFullName      = "fullname"
	ColFirstName     = "firstname"
	ColLastName      = "lastname"
	ColGender        = "gender"
	ColCountryName   = "country_name"
	ColContinentName = "continent_name"
	ColDateOfBirth   = "dateofbirth"
	ColBattingStyle  = "battingstyle"
	ColBowlingStyle  = "bowlingstyle"
	ColPosition      = "position"
	ColID            = "id"
	ColImagePath     = "image_path"
)

var Columns = []string{
	ColID,
	ColFullName,
	ColFirstName,
	ColLastName,
	ColGender,
	ColCountryName,
	ColContinentName,
	ColDateOfBirth,
	ColBattingStyle,
	ColBowlingStyle,
	ColPosition,
	ColImagePath,
}

// Row is one untouched dataset record. Empty string means the value was absent.
type Row struct {
	ID            string
	FullName      string
	FirstName     string
	LastName      string
	Gender        string
	CountryName   string
	ContinentName string
	DateOfBirth   string
	BattingStyle  string
	BowlingStyle  string
	Position      string
	ImagePath     string
}

// Get returns the value of a canonical column, or "" for unknown columns.
func (r Row) Get(col string) string {
	switch col {
	case ColID:
		return r.ID
	case ColFullName:
		return r.FullName
	case ColFirstName:
		return r.FirstName
	case ColLastName:
		return r.LastName
	case ColGender:
		return r.Gender
	case ColCountryName:
		return r.CountryName
	case ColContinentName:
		return r.ContinentName
	case ColDateOfBirth:
		return r.DateOfBirth
	case ColBattingStyle:
		return r.BattingStyle
	case ColBowlingStyle:
		return r.BowlingStyle
	case ColPosition:
		return r.Position
	case ColImagePath:
		return r.ImagePath
	}
	return ""
}

// Set assigns a canonical column and reports whether the column is known.
func (r *Row) Set(col, value string) bool {
	switch col {
	case ColID:
		r.ID = value
	case ColFullName:
		r.FullName = value
	case ColFirstName:
		r.FirstName = value
	case ColLastName:
		r.LastName = value
	case ColGender:
		r.Gender = value
	case ColCountryName:
		r.CountryName = value
	case ColContinentName:
		r.ContinentName = value
	case ColDateOfBirth:
		r.DateOfBirth = value
	case ColBattingStyle:
		r.BattingStyle = value
	case ColBowlingStyle:
		r.BowlingStyle = value
	case ColPosition:
		r.Position = value
	case ColImagePath:
		r.ImagePath = value
	default:
		return false
	}
	return true
}
