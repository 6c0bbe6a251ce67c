package easing

// presets maps preset names to their remap functions.
// Names follow the conventional tween-catalog spelling.
var presets = map[string]Func{
	"linear":       Linear,
	"easeIn":       EaseIn,
	"easeOut":      EaseOut,
	"easeInOut":    EaseInOut,
	"strongIn":     StrongIn,
	"strongOut":    StrongOut,
	"strongInOut":  StrongInOut,
	"expoIn":       ExpoIn,
	"expoOut":      ExpoOut,
	"expoInOut":    ExpoInOut,
	"backIn":       BackIn,
	"backOut":      BackOut,
	"backInOut":    BackInOut,
	"elasticIn":    ElasticIn,
	"elasticOut":   ElasticOut,
	"elasticInOut": ElasticInOut,
	"bounceIn":     BounceIn,
	"bounceOut":    BounceOut,
	"bounceInOut":  BounceInOut,
}

// Named returns the preset for name. The second result reports whether the
// name is registered; callers treating authoring input should fall back to
// Linear when it is false.
func Named(name string) (Func, bool) {
	fn, ok := presets[name]
	return fn, ok
}

// Names returns the registered preset names in unspecified order
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	return names
}
