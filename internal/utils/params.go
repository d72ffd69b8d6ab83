package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// ParamNames are the query parameter names one departure endpoint uses. An
// empty Limit means the endpoint does not accept one.
type ParamNames struct {
	Origin      string
	Destination string
	Time        string
	Limit       string
}

var (
	// LegacyParamNames are accepted by /get_available_timeslots, which has no limit.
	LegacyParamNames = ParamNames{Origin: "origen", Destination: "destino", Time: "hora"}
	// APIParamNames are accepted by the /api endpoints.
	APIParamNames = ParamNames{Origin: "origin", Destination: "destination", Time: "time", Limit: "limit"}
)

func (n ParamNames) rename(canonical string) string {
	switch canonical {
	case "origin":
		return n.Origin
	case "destination":
		return n.Destination
	case "time":
		return n.Time
	case "limit":
		if n.Limit == "" {
			return "limit"
		}
		return n.Limit
	default:
		return canonical
	}
}

// DepartureParams is a validated departure query.
type DepartureParams struct {
	Origin      string `param:"origin" validate:"required,max=200"`
	Destination string `param:"destination" validate:"required,max=200"`
	// Time is empty when the caller wants the current time.
	Time  string `param:"time" validate:"omitempty,clocktime"`
	Limit int    `param:"limit" validate:"gte=1,lte=50"`
}

// ParseIntParam retrieves an int value from the provided URL query parameters.
// If the key is absent it returns def; if the value is invalid it returns def
// and records a validation error under key.
func ParseIntParam(params url.Values, key string, def int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return def, fieldErrors
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return def, fieldErrors
	}
	return i, fieldErrors
}

// ParseDepartureParams reads and validates a departure query. Field errors are
// keyed by the parameter names in names.
func ParseDepartureParams(params url.Values, names ParamNames) (DepartureParams, map[string][]string) {
	limit, fieldErrors := ParseIntParam(params, names.Limit, DefaultDepartureLimit, nil)

	p := DepartureParams{
		Origin:      SanitizeInput(params.Get(names.Origin)),
		Destination: SanitizeInput(params.Get(names.Destination)),
		Time:        params.Get(names.Time),
		Limit:       limit,
	}

	for field, messages := range validateStruct(p, names.rename) {
		fieldErrors[field] = append(fieldErrors[field], messages...)
	}

	if len(fieldErrors) > 0 {
		return DepartureParams{}, fieldErrors
	}
	return p, nil
}
