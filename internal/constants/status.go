package constants

// StatusNotUpdated is the status of an entry for which no
// update was attempted since the program started.
const StatusNotUpdated = "not yet updated"

const (
	// StatusErrorPrefix prefixes the status of an entry
	// whose last update attempt failed.
	StatusErrorPrefix = "error: "
)
