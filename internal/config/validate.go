package config

func ValidateForRun(cfg *Config) error {
	if cfg.Feed == nil || cfg.Feed.BaseURL == "" {
		return ErrFeedURLMissing
	}
	if err := cfg.Redis.Validate(); err != nil {
		return err
	}
	return nil
}
