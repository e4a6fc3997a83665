package cousin

import (
	"github.com/spf13/viper"
)

// CousinComputationSettings enumerates the recognized cousin-computation
// options.
type CousinComputationSettings struct {
	// MaxDepthA prunes matrix/listing entries whose ancestor-to-A path
	// length exceeds this value. Nil means unbounded.
	MaxDepthA *int
	// MaxDepthB is MaxDepthA's counterpart for B.
	MaxDepthB *int
	// MaxResults stops matrix enumeration once this many unique entries
	// have been produced. Nil means unbounded.
	MaxResults *int

	CacheEnabled   bool
	CacheDirectory string
	CachePrefix    string
	CacheVersion   int
}

// DefaultSettings returns the settings a fresh cousin.Engine uses when the
// caller has not overridden anything.
func DefaultSettings() CousinComputationSettings {
	return CousinComputationSettings{
		CachePrefix:  "cousin",
		CacheVersion: 1,
	}
}

// SettingsFromEnvironment translates an environment-style mapping into
// CousinComputationSettings: max_anc_level/max_desc_level bound
// MaxDepthA/MaxDepthB, max_cousins_level additionally bounds both (a
// cousin relationship's degree is governed by the shallower of the two
// legs), max_cousins bounds MaxResults, and cache_cousins_tool is a
// Viper-truthy value that enables the disk cache. Every bound is combined
// with prior via min, so repeated narrowing calls only ever tighten the
// settings, never loosen them.
func SettingsFromEnvironment(env map[string]string, prior CousinComputationSettings) CousinComputationSettings {
	v := viper.New()
	for k, val := range env {
		v.Set(k, val)
	}

	out := prior

	if v.IsSet("max_anc_level") {
		out.MaxDepthA = minIntPtr(out.MaxDepthA, v.GetInt("max_anc_level"))
	}
	if v.IsSet("max_desc_level") {
		out.MaxDepthB = minIntPtr(out.MaxDepthB, v.GetInt("max_desc_level"))
	}
	if v.IsSet("max_cousins_level") {
		level := v.GetInt("max_cousins_level")
		out.MaxDepthA = minIntPtr(out.MaxDepthA, level)
		out.MaxDepthB = minIntPtr(out.MaxDepthB, level)
	}
	if v.IsSet("max_cousins") {
		out.MaxResults = minIntPtr(out.MaxResults, v.GetInt("max_cousins"))
	}
	if v.IsSet("cache_cousins_tool") {
		out.CacheEnabled = out.CacheEnabled || v.GetBool("cache_cousins_tool")
	}

	return out
}

// minIntPtr returns a pointer to the smaller of prior (if set) and val.
func minIntPtr(prior *int, val int) *int {
	if prior == nil {
		v := val
		return &v
	}
	if val < *prior {
		v := val
		return &v
	}
	p := *prior
	return &p
}
