package morph

import "errors"

var (
	// ErrNoSteps indicates a sequence was registered with an empty step list
	ErrNoSteps = errors.New("morph: sequence has no steps")

	// ErrNilTarget indicates a step delta references a nil target
	ErrNilTarget = errors.New("morph: step references nil target")

	// ErrMissingBaseline indicates a step animates a property that has no
	// explicit baseline and no live value to sniff one from. Surfaced at
	// registration so interpolation can never produce NaN from a missing
	// start value.
	ErrMissingBaseline = errors.New("morph: no baseline value for animated property")
)
