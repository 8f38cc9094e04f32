package model

import "strings"

// Session is the signing identity and chain reachability a call is made under.
// Generation grows on every identity or network change.
type Session struct {
	Account        string
	ChainReachable bool
	Generation     uint64
}

func (s Session) HasIdentity() bool {
	return s.Account != ""
}

// ChatSession is what the telegram front-end keeps per chat.
type ChatSession struct {
	Account    string `json:"account"`
	Generation uint64 `json:"generation"`
}

// SameAccount compares two chain addresses ignoring hex case.
// An empty address never matches.
func SameAccount(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
