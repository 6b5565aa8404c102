package constants

import (
	"os"
	"strings"
)

// Defaults for the two configuration inputs. 100 Hz with a unit octave
// multiplier is the reference configuration from the Branchi text; a
// low fundamental is usually paired with --octave 2.
const (
	DefaultFundamental = 100.0
	DefaultOctave      = 1.0
)

func GetAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}

func GetAllowedOrigins() []string {
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		return strings.Split(origins, ",")
	}
	return []string{"*"}
}
