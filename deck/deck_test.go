package deck

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/morph"
	"github.com/lixenwraith/morph/geometry"
)

const sampleDeck = `
title: Pipeline walkthrough
slides:
  - title: Ingest
    shapes:
      - name: source
        label: Source
        properties: {x: 4, y: 2, width: 18, height: 5, opacity: 1}
      - name: sink
        label: Sink
        properties: {x: 50, y: 2, width: 18, height: 5, opacity: 0}
    connectors:
      - from: source
        to: sink
        fromAnchor: right
        toAnchor: left
        kind: orthogonal
    steps:
      - tweens:
          - shape: sink
            properties: {opacity: 1}
            duration: 400
            easing: easeOut
      - tweens:
          - shape: source
            properties: {x: 10}
            duration: 250
            delay: 100
            easing: bounceOut
  - title: Empty-ish
    shapes:
      - name: lone
        properties: {x: 0, y: 0, width: 4, height: 2}
    steps:
      - tweens:
          - shape: lone
            properties: {x: 8}
`

func TestParseAndCompile(t *testing.T) {
	d, err := Parse([]byte(sampleDeck))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Title != "Pipeline walkthrough" || len(d.Slides) != 2 {
		t.Fatalf("unexpected deck shape: %q, %d slides", d.Title, len(d.Slides))
	}

	cs, err := d.Compile(0)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if cs.Sequence.StepCount() != 2 {
		t.Fatalf("StepCount = %d, want 2", cs.Sequence.StepCount())
	}
	if len(cs.Order) != 2 || cs.Order[0] != "source" || cs.Order[1] != "sink" {
		t.Fatalf("shape order = %v", cs.Order)
	}
	if cs.Labels["source"] != "Source" {
		t.Fatalf("label = %q", cs.Labels["source"])
	}

	sink := cs.Targets["sink"]
	if got := sink.GetOr(morph.PropOpacity, -1); got != 0 {
		t.Fatalf("sink baseline opacity = %v, want 0", got)
	}

	d0 := cs.Sequence.Step(0).Deltas[sink]
	if d0.Duration != 400*time.Millisecond {
		t.Fatalf("step 0 duration = %v", d0.Duration)
	}
	if d0.Easing == nil {
		t.Fatal("step 0 easing missing")
	}

	src := cs.Targets["source"]
	d1 := cs.Sequence.Step(1).Deltas[src]
	if d1.Delay != 100*time.Millisecond {
		t.Fatalf("step 1 delay = %v", d1.Delay)
	}
}

func TestCompileConnectors(t *testing.T) {
	d, err := Parse([]byte(sampleDeck))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cs, err := d.Compile(0)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	if len(cs.Conns) != 1 {
		t.Fatalf("connectors = %d, want 1", len(cs.Conns))
	}
	c := cs.Conns[0]
	if c.From != cs.Targets["source"] || c.To != cs.Targets["sink"] {
		t.Fatal("connector bound to wrong targets")
	}
	if c.Kind != geometry.ConnectionOrthogonal {
		t.Fatalf("kind = %v", c.Kind)
	}
	if c.FromAnchor != geometry.AnchorRight || c.ToAnchor != geometry.AnchorLeft {
		t.Fatalf("anchors = %q -> %q", c.FromAnchor, c.ToAnchor)
	}
}

func TestEmptyDeckRejected(t *testing.T) {
	_, err := Parse([]byte("title: hollow\n"))
	if !errors.Is(err, ErrNoSlides) {
		t.Fatalf("err = %v, want ErrNoSlides", err)
	}
}

func TestUnknownFieldRejected(t *testing.T) {
	_, err := Parse([]byte("title: x\nslides: []\nbogus: true\n"))
	if err == nil {
		t.Fatal("unknown top-level field should fail parsing")
	}
}

func TestStepReferencingUnknownShapeFails(t *testing.T) {
	src := `
slides:
  - shapes:
      - name: a
        properties: {x: 0}
    steps:
      - tweens:
          - shape: ghost
            properties: {x: 1}
`
	d, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = d.Compile(0)
	if !errors.Is(err, ErrUnknownShape) {
		t.Fatalf("err = %v, want ErrUnknownShape", err)
	}
}

func TestBadConnectorKindFails(t *testing.T) {
	src := `
slides:
  - shapes:
      - name: a
        properties: {x: 0}
      - name: b
        properties: {x: 10}
    connectors:
      - from: a
        to: b
        kind: zigzag
    steps:
      - tweens:
          - shape: a
            properties: {x: 5}
`
	d, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = d.Compile(0)
	if !errors.Is(err, ErrBadConnector) {
		t.Fatalf("err = %v, want ErrBadConnector", err)
	}
}

func TestDuplicateShapeNameFails(t *testing.T) {
	src := `
slides:
  - shapes:
      - name: a
        properties: {x: 0}
      - name: a
        properties: {x: 1}
    steps:
      - tweens:
          - shape: a
            properties: {x: 5}
`
	d, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = d.Compile(0)
	if !errors.Is(err, ErrDuplicateShape) {
		t.Fatalf("err = %v, want ErrDuplicateShape", err)
	}
}

func TestCompileOutOfRangeSlide(t *testing.T) {
	d, err := Parse([]byte(sampleDeck))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := d.Compile(99); err == nil {
		t.Fatal("out-of-range slide should fail")
	}
	if _, err := d.Compile(-1); err == nil {
		t.Fatal("negative slide should fail")
	}
}
