package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Vote is the caller's current vote on a post or comment.
type Vote int

const (
	VoteDown    Vote = -1
	VoteNeutral Vote = 0
	VoteUp      Vote = 1
)

// VoteFromLikes maps the upstream likes flag (true, null, false) to a Vote.
func VoteFromLikes(likes *bool) Vote {
	switch {
	case likes == nil:
		return VoteNeutral
	case *likes:
		return VoteUp
	default:
		return VoteDown
	}
}

// ErrInvalidVoteDirection is returned for directions outside -1, 0, 1.
var ErrInvalidVoteDirection = errors.New("dir must be -1, 0 or 1")

// ParseVoteDirection accepts a JSON number or a numeric string.
func ParseVoteDirection(raw json.RawMessage) (Vote, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, ErrInvalidVoteDirection
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidVoteDirection, err)
		}
		s = strings.TrimSpace(str)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidVoteDirection
	}

	switch f {
	case -1:
		return VoteDown, nil
	case 0:
		return VoteNeutral, nil
	case 1:
		return VoteUp, nil
	default:
		return 0, ErrInvalidVoteDirection
	}
}

// FormValue is the dir value sent upstream.
func (v Vote) FormValue() string {
	return strconv.Itoa(int(v))
}
