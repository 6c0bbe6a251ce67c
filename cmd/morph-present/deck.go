package main

// demoDeck is the built-in presentation played when no deck file is given
const demoDeck = `
title: morph demo
slides:
  - title: Pipeline
    shapes:
      - name: source
        label: Source
        properties: {x: 6, y: 4, width: 18, height: 5, opacity: 1}
      - name: queue
        label: Queue
        properties: {x: 34, y: 4, width: 18, height: 5, opacity: 0}
      - name: sink
        label: Sink
        properties: {x: 62, y: 4, width: 18, height: 5, opacity: 0}
    connectors:
      - from: source
        to: queue
        fromAnchor: right
        toAnchor: left
      - from: queue
        to: sink
        fromAnchor: right
        toAnchor: left
        kind: orthogonal
    steps:
      - tweens:
          - shape: queue
            properties: {opacity: 1}
            duration: 500
            easing: easeOut
          - shape: source
            properties: {x: 5}
            duration: 500
      - tweens:
          - shape: sink
            properties: {opacity: 1}
            duration: 500
            easing: easeOut
          - shape: source
            properties: {x: 4}
            duration: 500
      - tweens:
          - shape: source
            properties: {y: 14}
            duration: 700
            easing: bounceOut
          - shape: queue
            properties: {y: 14}
            duration: 700
            easing: bounceOut
          - shape: sink
            properties: {x: 40, y: 14}
            duration: 700
            delay: 150
            easing: backOut
  - title: Focus
    shapes:
      - name: panel
        label: Detail
        properties: {x: 30, y: 8, width: 20, height: 6, opacity: 0.3, scaleX: 1, scaleY: 1}
    steps:
      - tweens:
          - shape: panel
            properties: {opacity: 1, scaleX: 1.6, scaleY: 1.4}
            duration: 600
            easing: elasticOut
      - tweens:
          - shape: panel
            properties: {x: 6, y: 2, scaleX: 1, scaleY: 1}
            duration: 400
            easing: easeInOut
`
