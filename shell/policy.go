package shell

import (
	"net/url"
	"strings"

	"github.com/yllada/messages-desktop/common"
)

// IsInternalURL reports whether raw points at the messaging service or one
// of its subdomains over https.
func IsInternalURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "https" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == common.AppHost || strings.HasSuffix(host, "."+common.AppHost)
}

// Permission is a kind of permission the page may request.
type Permission int

const (
	PermissionOther Permission = iota
	PermissionNotifications
	PermissionMedia
	PermissionClipboard
	PermissionGeolocation
)

// PermissionAllowed decides a permission request raised while the page is
// at pageURL. Only the messaging service gets anything, and only the kinds
// it needs.
func PermissionAllowed(pageURL string, p Permission) bool {
	if !IsInternalURL(pageURL) {
		return false
	}
	switch p {
	case PermissionNotifications, PermissionMedia, PermissionClipboard, PermissionGeolocation:
		return true
	default:
		return false
	}
}
