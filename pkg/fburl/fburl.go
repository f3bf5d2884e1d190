// Package fburl extracts the numeric group and member identifiers from a
// Facebook group profile URL.
package fburl

import (
	"errors"
	"regexp"
)

var groupProfilePattern = regexp.MustCompile(`facebook\.com/groups/(\d+)/user/(\d+)/?`)

var ErrInvalidGroupProfileUrl = errors.New(
	"invalid group profile url, expected https://www.facebook.com/groups/{group_id}/user/{member_id}",
)

// ParseGroupProfile returns the group and member ids embedded in rawUrl.
func ParseGroupProfile(rawUrl string) (groupId, memberId string, err error) {
	match := groupProfilePattern.FindStringSubmatch(rawUrl)
	if match == nil {
		return "", "", ErrInvalidGroupProfileUrl
	}
	return match[1], match[2], nil
}
