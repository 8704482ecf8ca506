package dispatch

import "strings"

const minNotesLength = 10

func isValidID(id int64) bool {
	return id > 0
}

func isValidOptionalID(id *int64) bool {
	return id == nil || *id > 0
}

func isValidNotes(notes string) bool {
	return len(strings.TrimSpace(notes)) >= minNotesLength
}
