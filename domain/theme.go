package domain

import "time"

// ThemeMode is the UI colour scheme a user prefers.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"

	DefaultThemeMode = ThemeSystem
)

// ParseThemeMode validates raw input against the supported modes. Matching
// is exact: "DARK" and " dark" are rejected.
func ParseThemeMode(raw string) (ThemeMode, error) {
	mode := ThemeMode(raw)
	if !mode.Valid() {
		return "", ErrInvalidThemeMode
	}
	return mode, nil
}

func (m ThemeMode) Valid() bool {
	switch m {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	default:
		return false
	}
}

// ThemePreference is the single per-owner theme row.
type ThemePreference struct {
	ID        int64     `json:"id"`
	OwnerID   string    `json:"user_id"`
	Mode      ThemeMode `json:"theme_mode"`
	UpdatedAt time.Time `json:"updated_at"`
}
