package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec decodes a prefab YAML file into the given spec type.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec is the tunable player prefab, stored in player.yaml.
type PlayerSpec struct {
	Name      string  `yaml:"name"`
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
	MaxJumps  int     `yaml:"max_jumps"`
	Health    int     `yaml:"health"`

	AttackDamage       int     `yaml:"attack_damage"`
	AttackCooldown     float64 `yaml:"attack_cooldown"`
	AttackDuration     float64 `yaml:"attack_duration"`
	RunAttackDuration  float64 `yaml:"run_attack_duration"`
	JumpAttackDuration float64 `yaml:"jump_attack_duration"`

	HurtDuration  float64 `yaml:"hurt_duration"`
	HurtInputLock float64 `yaml:"hurt_input_lock"`
	Invuln        float64 `yaml:"invuln"`
	KnockbackX    float64 `yaml:"knockback_x"`
	KnockbackY    float64 `yaml:"knockback_y"`
	DeathDelay    float64 `yaml:"death_delay"`

	Animation AnimationSpec `yaml:"animation"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// EnemySpec is the tunable enemy prefab, stored in enemy.yaml.
type EnemySpec struct {
	Name      string  `yaml:"name"`
	WalkSpeed float64 `yaml:"walk_speed"`
	RunSpeed  float64 `yaml:"run_speed"`
	Health    int     `yaml:"health"`

	DetectRangeTiles float64 `yaml:"detect_range_tiles"`
	AttackMinTiles   float64 `yaml:"attack_min_tiles"`
	AttackMaxTiles   float64 `yaml:"attack_max_tiles"`

	AttackDamage   int     `yaml:"attack_damage"`
	ContactDamage  int     `yaml:"contact_damage"`
	AttackCooldown float64 `yaml:"attack_cooldown"`

	PatrolHalfWidth float64 `yaml:"patrol_half_width"`
	KnockbackX      float64 `yaml:"knockback_x"`
	KnockbackY      float64 `yaml:"knockback_y"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// AnimationSpec maps state names to animation definitions.
type AnimationSpec struct {
	Sheet string                      `yaml:"sheet"`
	Defs  map[string]AnimationDefSpec `yaml:"defs"`
}

type AnimationDefSpec struct {
	Row        int     `yaml:"row"`
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}
