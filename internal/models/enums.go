package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidEnumValue is returned when a name or ordinal does not match any member of an enumeration.
var ErrInvalidEnumValue = errors.New("invalid enum value")

// enumSpec describes an enumeration that travels as its name but may arrive as the
// ordinal the frontend uses.
type enumSpec struct {
	kind     string
	names    []string
	ordinals map[int]string
}

func (e enumSpec) parse(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, name := range e.names {
		if strings.EqualFold(raw, name) {
			return name, nil
		}
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if name, ok := e.ordinals[n]; ok {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %s %q (allowed: %s)", ErrInvalidEnumValue, e.kind, raw, strings.Join(e.names, ", "))
}

// unmarshal returns "" for a JSON null so the caller leaves its value untouched.
func (e enumSpec) unmarshal(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return e.parse(s)
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return "", fmt.Errorf("%w: %s must be a name or ordinal", ErrInvalidEnumValue, e.kind)
	}
	return e.parse(strconv.Itoa(n))
}

// ClientType classifies who a client is.
type ClientType string

const (
	ClientTypeOrganizer ClientType = "Organizer"
	ClientTypeStudent   ClientType = "Student"
	ClientTypeOther     ClientType = "Other"
)

var clientTypeEnum = enumSpec{
	kind:     "clientType",
	names:    []string{"Organizer", "Student", "Other"},
	ordinals: map[int]string{1: "Organizer", 2: "Student", 3: "Other"},
}

// ParseClientType accepts a name (any case) or its ordinal.
func ParseClientType(raw string) (ClientType, error) {
	name, err := clientTypeEnum.parse(raw)
	return ClientType(name), err
}

func (t *ClientType) UnmarshalJSON(data []byte) error {
	name, err := clientTypeEnum.unmarshal(data)
	if err != nil {
		return err
	}
	if name != "" {
		*t = ClientType(name)
	}
	return nil
}

// ServiceType is the kind of bookable service.
type ServiceType string

const (
	ServiceTypePrivateLesson ServiceType = "PrivateLesson"
	ServiceTypeEventBooking  ServiceType = "EventBooking"
	ServiceTypeWorkshop      ServiceType = "Workshop"
	ServiceTypeBootcamp      ServiceType = "Bootcamp"
	ServiceTypeOther         ServiceType = "Other"
)

var serviceTypeEnum = enumSpec{
	kind:  "serviceType",
	names: []string{"PrivateLesson", "EventBooking", "Workshop", "Bootcamp", "Other"},
	ordinals: map[int]string{
		1: "PrivateLesson", 2: "EventBooking", 3: "Workshop", 4: "Bootcamp", 5: "Other",
	},
}

// ParseServiceType accepts a name (any case) or its ordinal.
func ParseServiceType(raw string) (ServiceType, error) {
	name, err := serviceTypeEnum.parse(raw)
	return ServiceType(name), err
}

func (t *ServiceType) UnmarshalJSON(data []byte) error {
	name, err := serviceTypeEnum.unmarshal(data)
	if err != nil {
		return err
	}
	if name != "" {
		*t = ServiceType(name)
	}
	return nil
}

// LocationType says where a booked session takes place.
type LocationType string

const (
	LocationTypeOnSite  LocationType = "OnSite"
	LocationTypeAtVenue LocationType = "AtVenue"
	LocationTypeOnline  LocationType = "Online"
)

var locationTypeEnum = enumSpec{
	kind:     "locationType",
	names:    []string{"OnSite", "AtVenue", "Online"},
	ordinals: map[int]string{1: "OnSite", 2: "AtVenue", 3: "Online"},
}

// ParseLocationType accepts a name (any case) or its ordinal.
func ParseLocationType(raw string) (LocationType, error) {
	name, err := locationTypeEnum.parse(raw)
	return LocationType(name), err
}

func (t *LocationType) UnmarshalJSON(data []byte) error {
	name, err := locationTypeEnum.unmarshal(data)
	if err != nil {
		return err
	}
	if name != "" {
		*t = LocationType(name)
	}
	return nil
}
