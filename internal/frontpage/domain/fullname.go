package domain

import (
	"regexp"
	"strings"
)

// Kind is the type tag of an upstream identifier.
type Kind string

const (
	KindUnknown Kind = ""
	KindComment Kind = "t1"
	KindPost    Kind = "t3"
)

// ParseKind accepts the tag itself or a friendly name. Anything else is KindUnknown.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "t1", "comment":
		return KindComment
	case "t3", "post", "link":
		return KindPost
	default:
		return KindUnknown
	}
}

// Prefix returns the fullname prefix, e.g. "t3_".
func (k Kind) Prefix() string {
	return string(k) + "_"
}

// Target is what a coerced identifier is used for.
type Target int

const (
	TargetVote Target = iota
	TargetReply
)

// shortIDMaxLen is the longest raw id the reply heuristic treats as a comment.
const shortIDMaxLen = 6

var fullnameRe = regexp.MustCompile(`^t[13]_`)

// IsFullname reports whether id already carries a post or comment prefix.
func IsFullname(id string) bool {
	return fullnameRe.MatchString(id)
}

// ToFullname coerces a raw id into a fullname. Existing prefixes pass through and an
// explicit hint wins. Without a hint, votes assume a post, which misclassifies raw
// comment ids, and replies assume a comment for ids of at most six characters.
// Both guesses are best effort; nothing is verified upstream.
func ToFullname(raw string, target Target, hint Kind) string {
	if IsFullname(raw) {
		return raw
	}
	if hint != KindUnknown {
		return hint.Prefix() + raw
	}

	if target == TargetReply && len(raw) <= shortIDMaxLen {
		return KindComment.Prefix() + raw
	}
	return KindPost.Prefix() + raw
}
