// Package yamldoc is a reference animation engine that reads scenes
// from YAML documents. It implements engine.Importer and is used by the
// animview command and by tests that need a real engine behind the
// bridge.
//
// A document looks like this:
//
//	version: v1.0.0
//	artboards:
//	  - name: Main
//	    width: 100
//	    height: 100
//	    clip: true
//	    shapes:
//	      - name: ball
//	        kind: ellipse
//	        width: 20
//	        height: 20
//	        fill: {color: "#ff3366"}
//	    animations:
//	      - name: bounce
//	        duration: 1
//	        loop: pingPong
//	        keys:
//	          - shape: ball
//	            property: y
//	            frames:
//	              - {time: 0, value: 10, ease: inOutQuad}
//	              - {time: 1, value: 90}
//
// Path shapes list their commands as [verb, x, y, ...] with the verbs
// move, line, cubic and close. Rect and ellipse shapes are centered on
// their origin. Colors are #RRGGBB or #AARRGGBB.
//
// Documents must declare a v1 semantic version. Other majors import as
// engine.ImportUnsupportedVersion; anything that does not parse or
// refers to something that does not exist imports as
// engine.ImportMalformed.
//
// A state machine runs one layer: the current state's animation plays
// while the state is active. Each advance clears the reported events,
// evaluates transitions once in document order, consumes triggers and
// then advances the animation.
package yamldoc
