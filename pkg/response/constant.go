package response

const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusOK      = "ok"

	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong, please try again later"

	// DateTimeFormat is RFC 3339 in UTC.
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"
)
