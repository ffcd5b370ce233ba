package domain

// Toggles are the process-wide switches read once at startup.
type Toggles struct {
	// HideComments strips block comments from fetched CSS.
	HideComments bool
	// DryRun prints output instead of writing files.
	DryRun bool
}

// Merge returns toggles enabled in either t or other.
func (t Toggles) Merge(other Toggles) Toggles {
	return Toggles{
		HideComments: t.HideComments || other.HideComments,
		DryRun:       t.DryRun || other.DryRun,
	}
}
