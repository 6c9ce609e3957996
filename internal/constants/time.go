package constants

const (
	// DateFormat is the standard date-key format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DateTimeFormat is the format accepted for deadlines on the command line
	DateTimeFormat = "2006-01-02 15:04"
)
