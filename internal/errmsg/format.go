// Package errmsg formats failures for the status line and the log.
package errmsg

import "fmt"

// Op names what the user was doing when something failed.
type Op string

const (
	// Gallery operations
	OpPhotoLoad    Op = "load photo"
	OpLightboxOpen Op = "open photo"

	// Cabinet operations
	OpCatalogLoad   Op = "load track catalog"
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"
	OpPlaybackNext  Op = "skip track"

	// Initialization
	OpConfigLoad Op = "load configuration"
)

// Format returns the status line text for a failed op.
func Format(op Op, err error) string {
	return FormatWith(op, "", err)
}

// FormatWith is Format naming the file or track the op worked on.
// A nil err yields "".
func FormatWith(op Op, subject string, err error) string {
	switch {
	case err == nil:
		return ""
	case subject == "":
		return fmt.Sprintf("Failed to %s: %v", op, err)
	default:
		return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
	}
}
