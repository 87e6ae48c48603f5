package debox

import (
	"net/url"
	"strings"
)

const (
	DefaultBaseURL         = "https://open.debox.pro"
	DefaultGroupInviteBase = "https://m.debox.pro/group"

	userInfoPath         = "/openapi/authorize/userinfo"
	groupInfoPath        = "/openapi/group/info"
	sendMessagePath      = "/openapi/send_robot_message"
	sendGroupMessagePath = "/openapi/send_robot_group_message"
)

// Endpoints is the table of remote URLs a Client talks to. A Client keeps its
// own copy, so it is never shared mutable state.
type Endpoints struct {
	UserInfo         string
	GroupInfo        string
	SendMessage      string
	SendGroupMessage string
	GroupInviteBase  string
}

// DefaultEndpoints returns the production DeBox endpoints.
func DefaultEndpoints() Endpoints {
	return EndpointsFor(DefaultBaseURL)
}

// EndpointsFor builds the API endpoints against baseURL. The group invite base
// stays on the public DeBox host because the server matches it literally.
func EndpointsFor(baseURL string) Endpoints {
	base := strings.TrimRight(baseURL, "/")

	return Endpoints{
		UserInfo:         base + userInfoPath,
		GroupInfo:        base + groupInfoPath,
		SendMessage:      base + sendMessagePath,
		SendGroupMessage: base + sendGroupMessagePath,
		GroupInviteBase:  DefaultGroupInviteBase,
	}
}

func (e Endpoints) userInfoURL(userID string) string {
	q := url.Values{}
	q.Set("user_id", userID)

	return e.UserInfo + "?" + q.Encode()
}

func (e Endpoints) groupInfoURL(groupID string) string {
	q := url.Values{}
	q.Set("group_invite_url", e.GroupInviteURL(groupID))

	return e.GroupInfo + "?" + q.Encode()
}

// GroupInviteURL is the invite link DeBox uses to identify a group.
func (e Endpoints) GroupInviteURL(groupID string) string {
	return e.GroupInviteBase + "?id=" + groupID
}
