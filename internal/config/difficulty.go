package config

// Round lengths for the difficulty presets.
const (
	EasyRoundSeconds = 45
	HardRoundSeconds = 20
)

// ApplyPreset modifies the config based on a difficulty preset.
// DifficultyNormal keeps the loaded round length.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Round.Seconds = EasyRoundSeconds
		cfg.Round.DrawDelay = cfg.Round.DrawDelay * 3 / 2
	case DifficultyHard:
		cfg.Round.Seconds = HardRoundSeconds
	}
}
