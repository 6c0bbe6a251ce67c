// Package deck loads declarative slide decks from YAML. A deck is a list
// of slides; each slide declares shapes with their baseline properties,
// optional connectors between shapes, and the ordered steps a presenter
// clicks through. Compilation turns a slide into live targets and a
// registered sequence for the scheduler.
package deck

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/morph"
	"github.com/lixenwraith/morph/geometry"
	"github.com/lixenwraith/morph/sequence"
)

var (
	ErrNoSlides       = errors.New("deck: no slides")
	ErrUnknownShape   = errors.New("deck: step references unknown shape")
	ErrBadConnector   = errors.New("deck: invalid connector")
	ErrDuplicateShape = errors.New("deck: duplicate shape name")
)

// Deck is the parsed YAML document
type Deck struct {
	Title  string  `yaml:"title"`
	Slides []Slide `yaml:"slides"`
}

// Slide declares one page of the presentation
type Slide struct {
	Title      string         `yaml:"title"`
	Shapes     []ShapeDef     `yaml:"shapes"`
	Connectors []ConnectorDef `yaml:"connectors"`
	Steps      []StepDef      `yaml:"steps"`
}

// ShapeDef declares a shape and its baseline property values
type ShapeDef struct {
	Name       string             `yaml:"name"`
	Label      string             `yaml:"label"`
	Properties map[string]float64 `yaml:"properties"`
}

// ConnectorDef declares a routed connector between two named shapes.
// Kind is straight, curved, or orthogonal; empty means straight.
type ConnectorDef struct {
	From       string `yaml:"from"`
	To         string `yaml:"to"`
	FromAnchor string `yaml:"fromAnchor"`
	ToAnchor   string `yaml:"toAnchor"`
	Kind       string `yaml:"kind"`
}

// StepDef declares one presentation advance
type StepDef struct {
	Tweens []TweenDef `yaml:"tweens"`
}

// TweenDef declares end values for one shape within a step. Durations are
// milliseconds; zero means the scheduler default. Unknown easing names
// degrade to linear.
type TweenDef struct {
	Shape      string             `yaml:"shape"`
	Properties map[string]float64 `yaml:"properties"`
	DurationMs int                `yaml:"duration"`
	DelayMs    int                `yaml:"delay"`
	Easing     string             `yaml:"easing"`
}

// Parse decodes a YAML deck. Unknown fields are rejected, so authoring
// typos fail loudly instead of silently dropping animation.
func Parse(data []byte) (*Deck, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d Deck
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("deck: parse: %w", err)
	}
	if len(d.Slides) == 0 {
		return nil, ErrNoSlides
	}
	return &d, nil
}

// Load reads and parses a deck file
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("deck: read %s: %w", path, err)
	}
	return Parse(data)
}

// Connector is a compiled connector bound to live targets
type Connector struct {
	From, To   *morph.Target
	FromAnchor geometry.Anchor
	ToAnchor   geometry.Anchor
	Kind       geometry.ConnectionKind
}

// CompiledSlide is a slide ready to present: live targets, the registered
// sequence, and resolved connectors. Shape order follows the YAML.
type CompiledSlide struct {
	Title    string
	Order    []string
	Targets  map[string]*morph.Target
	Labels   map[string]string
	Sequence *morph.Sequence
	Conns    []Connector
}

// Compile materializes one slide by index
func (d *Deck) Compile(slide int) (*CompiledSlide, error) {
	if slide < 0 || slide >= len(d.Slides) {
		return nil, fmt.Errorf("deck: slide %d out of range", slide)
	}
	s := d.Slides[slide]

	cs := &CompiledSlide{
		Title:   s.Title,
		Targets: make(map[string]*morph.Target, len(s.Shapes)),
		Labels:  make(map[string]string, len(s.Shapes)),
	}

	b := sequence.NewBuilder()
	for _, sh := range s.Shapes {
		if _, dup := cs.Targets[sh.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateShape, sh.Name)
		}
		tgt := morph.NewTarget(sh.Name, sh.Properties)
		cs.Targets[sh.Name] = tgt
		cs.Labels[sh.Name] = sh.Label
		cs.Order = append(cs.Order, sh.Name)
		b.Baseline(tgt, sh.Properties)
	}

	for i, st := range s.Steps {
		b.Step()
		for _, tw := range st.Tweens {
			tgt, ok := cs.Targets[tw.Shape]
			if !ok {
				return nil, fmt.Errorf("%w: step %d, shape %q", ErrUnknownShape, i, tw.Shape)
			}
			var opts []sequence.TweenOption
			if tw.DurationMs > 0 {
				opts = append(opts, sequence.Over(time.Duration(tw.DurationMs)*time.Millisecond))
			}
			if tw.DelayMs > 0 {
				opts = append(opts, sequence.After(time.Duration(tw.DelayMs)*time.Millisecond))
			}
			if tw.Easing != "" {
				opts = append(opts, sequence.Ease(tw.Easing))
			}
			b.Tween(tgt, tw.Properties, opts...)
		}
	}

	seq, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("deck: slide %d: %w", slide, err)
	}
	cs.Sequence = seq

	for _, c := range s.Connectors {
		conn, err := compileConnector(cs.Targets, c)
		if err != nil {
			return nil, fmt.Errorf("deck: slide %d: %w", slide, err)
		}
		cs.Conns = append(cs.Conns, conn)
	}
	return cs, nil
}

func compileConnector(targets map[string]*morph.Target, c ConnectorDef) (Connector, error) {
	from, ok := targets[c.From]
	if !ok {
		return Connector{}, fmt.Errorf("%w: from shape %q", ErrBadConnector, c.From)
	}
	to, ok := targets[c.To]
	if !ok {
		return Connector{}, fmt.Errorf("%w: to shape %q", ErrBadConnector, c.To)
	}

	kind := geometry.ConnectionStraight
	switch c.Kind {
	case "", "straight":
	case "curved":
		kind = geometry.ConnectionCurved
	case "orthogonal":
		kind = geometry.ConnectionOrthogonal
	default:
		return Connector{}, fmt.Errorf("%w: kind %q", ErrBadConnector, c.Kind)
	}

	return Connector{
		From:       from,
		To:         to,
		FromAnchor: geometry.Anchor(c.FromAnchor),
		ToAnchor:   geometry.Anchor(c.ToAnchor),
		Kind:       kind,
	}, nil
}
