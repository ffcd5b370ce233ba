package config

import (
	"os"

	"go.trai.ch/cssmerge/internal/core/domain"
)

const (
	// HideCommentsEnv enables comment stripping when set to "true".
	HideCommentsEnv = "HIDE_COMMENTS"
	// DryRunEnv enables dry-run mode when set to "true".
	DryRunEnv = "DRY_RUN"
)

// LoadToggles reads the process toggles from the environment.
func LoadToggles() domain.Toggles {
	return TogglesFrom(os.Getenv)
}

// TogglesFrom reads the process toggles through getenv.
func TogglesFrom(getenv func(string) string) domain.Toggles {
	return domain.Toggles{
		HideComments: getenv(HideCommentsEnv) == "true",
		DryRun:       getenv(DryRunEnv) == "true",
	}
}
