package domain

import "strings"

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// Table is a mongo collection name
type Table string

const (
	TableListings = Table("listings")
	TableAccounts = Table("accounts")
)

// UserId is the resolved identity handed down by the auth layer. The core
// never parses credentials, it only compares these.
type UserId string

func (u UserId) IsEmpty() bool {
	return len(u) == 0
}

func (u UserId) Equals(o UserId) bool {
	return strings.EqualFold(string(u), string(o))
}
