package config

// ArchiveConfig contains the [archive] section.
type ArchiveConfig struct {
	// Level is nil if not configured.
	Level   *int
	Pattern string
}

// ForArchive returns configuration for archive.
func (l *Loader) ForArchive() (c ArchiveConfig) {
	sec := l.section("archive")
	if sec == nil {
		return c
	}

	if k, err := sec.GetKey("level"); err == nil {
		if v, err := k.Int(); err == nil {
			c.Level = &v
		}
	}

	c.Pattern = sec.Key("pattern").String()

	return
}

// ForArchive calls Loader.ForArchive on the DefaultLoader instance.
func ForArchive() ArchiveConfig {
	return DefaultLoader.ForArchive()
}

// UnarchiveConfig contains the [unarchive] section.
type UnarchiveConfig struct {
	PreserveMode bool
	Dir          string
}

// ForUnarchive returns configuration for unarchive.
func (l *Loader) ForUnarchive() (c UnarchiveConfig) {
	sec := l.section("unarchive")
	if sec == nil {
		return c
	}

	c.PreserveMode = sec.Key("preserve-mode").MustBool(false)
	c.Dir = sec.Key("dir").String()

	return
}

// ForUnarchive calls Loader.ForUnarchive on the DefaultLoader instance.
func ForUnarchive() UnarchiveConfig {
	return DefaultLoader.ForUnarchive()
}
