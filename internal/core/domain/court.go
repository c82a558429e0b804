package domain

import (
	"fmt"
	"strings"
)

// CourtLevel is the closed set of court-level codes accepted by the criminal
// file service.
type CourtLevel string

const (
	CourtLevelProvincial CourtLevel = "P"
	CourtLevelSupreme    CourtLevel = "S"
	CourtLevelAppeal     CourtLevel = "A"
)

// CourtClass is the closed set of court-class codes accepted by the criminal
// file service.
type CourtClass string

const (
	CourtClassAdult       CourtClass = "A"
	CourtClassYouth       CourtClass = "Y"
	CourtClassSmallClaims CourtClass = "C"
	CourtClassFamily      CourtClass = "F"
	CourtClassMotion      CourtClass = "M"
	CourtClassTraffic     CourtClass = "T"
)

// ParseCourtLevel parses a court level code case-insensitively.
func ParseCourtLevel(s string) (CourtLevel, error) {
	for _, l := range []CourtLevel{CourtLevelProvincial, CourtLevelSupreme, CourtLevelAppeal} {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unknown court level %q", ErrInvalidInput, s)
}

// ParseCourtClass parses a court class code case-insensitively.
func ParseCourtClass(s string) (CourtClass, error) {
	classes := []CourtClass{
		CourtClassAdult,
		CourtClassYouth,
		CourtClassSmallClaims,
		CourtClassFamily,
		CourtClassMotion,
		CourtClassTraffic,
	}
	for _, c := range classes {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown court class %q", ErrInvalidInput, s)
}
