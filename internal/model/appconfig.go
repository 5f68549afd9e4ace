package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default solver settings applied to new projects
	DefaultPieceSet    string `json:"default_piece_set"`
	DefaultMaxAttempts int64  `json:"default_max_attempts"`

	// Application preferences
	AutoSaveInterval int      `json:"auto_save_interval"` // minutes, 0 = disabled
	RecentProjects   []string `json:"recent_projects"`
	Theme            string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSolveSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSolveSettings()
	return AppConfig{
		DefaultPieceSet:    defaults.PieceSet,
		DefaultMaxAttempts: defaults.MaxAttempts,
		AutoSaveInterval:   0,
		RecentProjects:     []string{},
		Theme:              "system",
	}
}

// ApplyToSettings copies the default values from AppConfig into a
// SolveSettings struct. This is used when creating a new project so it
// inherits the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *SolveSettings) {
	s.PieceSet = c.DefaultPieceSet
	s.MaxAttempts = c.DefaultMaxAttempts
}

// AddRecentProject prepends a project path to the recent list, removing
// any earlier occurrence and capping the list at ten entries.
func (c *AppConfig) AddRecentProject(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	c.RecentProjects = recent
}
