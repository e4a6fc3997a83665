package cousin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSettingsFromEnvironmentBasic(t *testing.T) {
	env := map[string]string{
		"max_anc_level":      "3",
		"max_desc_level":     "4",
		"max_cousins":        "50",
		"cache_cousins_tool": "true",
	}
	got := SettingsFromEnvironment(env, DefaultSettings())

	require.NotNil(t, got.MaxDepthA)
	require.Equal(t, 3, *got.MaxDepthA)
	require.NotNil(t, got.MaxDepthB)
	require.Equal(t, 4, *got.MaxDepthB)
	require.NotNil(t, got.MaxResults)
	require.Equal(t, 50, *got.MaxResults)
	require.True(t, got.CacheEnabled)
}

func TestSettingsFromEnvironmentMinOverPrior(t *testing.T) {
	priorDepth := 2
	prior := DefaultSettings()
	prior.MaxDepthA = &priorDepth

	env := map[string]string{"max_anc_level": "5"}
	got := SettingsFromEnvironment(env, prior)

	require.Equal(t, 2, *got.MaxDepthA, "a wider env value must not loosen a tighter prior setting")

	env2 := map[string]string{"max_anc_level": "1"}
	got2 := SettingsFromEnvironment(env2, prior)
	require.Equal(t, 1, *got2.MaxDepthA)
}

func TestSettingsFromEnvironmentCousinsLevelBoundsBoth(t *testing.T) {
	env := map[string]string{"max_cousins_level": "2"}
	got := SettingsFromEnvironment(env, DefaultSettings())

	require.NotNil(t, got.MaxDepthA)
	require.Equal(t, 2, *got.MaxDepthA)
	require.NotNil(t, got.MaxDepthB)
	require.Equal(t, 2, *got.MaxDepthB)
}

func TestSettingsFromEnvironmentEmpty(t *testing.T) {
	got := SettingsFromEnvironment(nil, DefaultSettings())
	require.Nil(t, got.MaxDepthA)
	require.Nil(t, got.MaxDepthB)
	require.Nil(t, got.MaxResults)
	require.False(t, got.CacheEnabled)
}
