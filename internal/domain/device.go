package domain

import (
	"net/url"
	"strings"
	"time"
)

// Platform classifies a push endpoint by its host.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformDesktop Platform = "desktop"
)

// Device is one registered push endpoint of a user.
type Device struct {
	ID           string
	UserID       string
	Endpoint     string
	P256dhKey    string
	AuthKey      string
	RegisteredAt time.Time
}

// Platform derives the device platform from the endpoint host.
// Apple's push gateway hosts identify iOS/Safari subscriptions; everything
// else (FCM, Mozilla autopush, WNS) is treated as desktop.
func (d *Device) Platform() Platform {
	u, err := url.Parse(d.Endpoint)
	if err != nil {
		return PlatformDesktop
	}
	host := strings.ToLower(u.Hostname())
	if strings.HasSuffix(host, "push.apple.com") {
		return PlatformIOS
	}
	return PlatformDesktop
}

// DeviceFilter restricts which of a user's endpoints receive a delivery.
type DeviceFilter string

const (
	DeviceFilterAll     DeviceFilter = "all"
	DeviceFilterIOS     DeviceFilter = "ios"
	DeviceFilterDesktop DeviceFilter = "desktop"
)

func (f DeviceFilter) Valid() bool {
	switch f {
	case DeviceFilterAll, DeviceFilterIOS, DeviceFilterDesktop:
		return true
	}
	return false
}

// Allows reports whether a device of the given platform passes the filter.
func (f DeviceFilter) Allows(p Platform) bool {
	switch f {
	case DeviceFilterIOS:
		return p == PlatformIOS
	case DeviceFilterDesktop:
		return p == PlatformDesktop
	}
	return true
}
