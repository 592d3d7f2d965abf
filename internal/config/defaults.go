package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:      30,
			JumpSpeed:    17,
			PlayerXSpeed: 7,
			WobbleSpeed:  8,
			WobbleDist:   0.07,
		},
		Campaign: CampaignConfig{
			Lives:      3,
			EndDelay:   1,
			CoinPoints: 10,
			LevelBonus: 100,
		},
		Controls: ControlsConfig{
			HoldTicks: 8,
		},
	}
}
