package models

import (
	"strconv"
	"strings"
)

// Quality represents the resolution advertised by a media candidate label
type Quality int

const (
	QualityUnknown Quality = iota
	Quality360p
	Quality480p
	Quality720p
	Quality1080p
	Quality2160p // 4K
)

// String returns the string representation of the quality
func (q Quality) String() string {
	switch q {
	case Quality360p:
		return "360p"
	case Quality480p:
		return "480p"
	case Quality720p:
		return "720p"
	case Quality1080p:
		return "1080p"
	case Quality2160p:
		return "2160p"
	default:
		return "unknown"
	}
}

// ParseQuality converts a candidate label ("720p", "720", "HD", ...) to a Quality.
// The catalog only uses labels for display, so unrecognized values map to QualityUnknown.
func ParseQuality(label string) Quality {
	label = strings.ToLower(strings.TrimSpace(label))
	switch label {
	case "sd":
		return Quality480p
	case "hd":
		return Quality720p
	case "fhd", "full hd":
		return Quality1080p
	case "uhd", "4k":
		return Quality2160p
	}

	height, err := strconv.Atoi(strings.TrimSuffix(label, "p"))
	if err != nil {
		return QualityUnknown
	}
	switch height {
	case 360:
		return Quality360p
	case 480:
		return Quality480p
	case 720:
		return Quality720p
	case 1080:
		return Quality1080p
	case 2160:
		return Quality2160p
	default:
		return QualityUnknown
	}
}
