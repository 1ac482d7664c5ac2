package prefabs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	require.NoError(t, err)

	require.Equal(t, "player", spec.Name)
	require.Equal(t, 220.0, spec.MoveSpeed)
	require.Equal(t, 560.0, spec.JumpSpeed)
	require.Equal(t, 2, spec.MaxJumps)
	require.Equal(t, 100, spec.Health)
	require.Equal(t, 10, spec.AttackDamage)
	require.Equal(t, 0.45, spec.AttackCooldown)
	require.Equal(t, 1.0, spec.Invuln)
	require.Equal(t, 1.5, spec.DeathDelay)

	// every player state needs an animation definition
	for _, name := range []string{"idle", "run", "jump", "attack", "run_attack", "jump_attack", "hurt", "death"} {
		def, ok := spec.Animation.Defs[name]
		require.True(t, ok, "missing animation %q", name)
		require.Greater(t, def.FrameCount, 0, "animation %q has no frames", name)
		require.Greater(t, def.FPS, 0.0, "animation %q has no rate", name)
	}
	require.True(t, spec.Animation.Defs["idle"].Loop)
	require.False(t, spec.Animation.Defs["attack"].Loop)
}

func TestLoadEnemySpec(t *testing.T) {
	spec, err := LoadEnemySpec()
	require.NoError(t, err)

	require.Equal(t, "walker", spec.Name)
	require.Equal(t, 60.0, spec.WalkSpeed)
	require.Equal(t, 140.0, spec.RunSpeed)
	require.Equal(t, 30, spec.Health)
	require.Equal(t, 6.0, spec.DetectRangeTiles)
	require.Equal(t, 1.0, spec.AttackMinTiles)
	require.Equal(t, 2.5, spec.AttackMaxTiles)
	require.Equal(t, 15, spec.AttackDamage)
	require.Equal(t, 5, spec.ContactDamage)
	require.Equal(t, 96.0, spec.PatrolHalfWidth)
}

func TestLoadSpecErrors(t *testing.T) {
	_, err := LoadSpec[PlayerSpec]("nope.yaml")
	require.Error(t, err)
}

func TestCleanPrefabPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"player.yaml", "player.yaml"},
		{"prefabs/player.yaml", "player.yaml"},
		{"", ""},
	}
	for _, c := range cases {
		require.Equal(t, c.want, cleanPrefabPath(c.in))
	}
}
