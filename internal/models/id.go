package models

import "strconv"

// LocalID identifies a row in the local relational backend. IDs handed out
// by the two backends live in separate spaces and are never interchangeable.
type LocalID uint

// ParseLocalID parses the transport form of a local ID.
func ParseLocalID(s string) (LocalID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return LocalID(n), nil
}

func (id LocalID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// NotionID identifies a page in a user's Notion workspace. It is opaque;
// nothing may be derived from its contents.
type NotionID string

func (id NotionID) String() string {
	return string(id)
}
