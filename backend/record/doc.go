// Package record provides a render backend that draws nothing. It keeps
// every resource it is asked to create, records the draw calls of each
// frame as typed commands, and counts live resources per kind.
//
// It is the backend used by the bridge's own tests: a full
// create, draw, release cycle must bring Live back to zero, and Faults
// reports contract violations such as releasing a handle twice, mapping a
// buffer that is already mapped, or restoring without a matching save.
//
// # Example
//
//	b := record.New()
//	file, _ := animbridge.Import(data, importer, b)
//	...
//	canvas := record.NewCanvas()
//	scene.Draw(canvas)
//	for _, cmd := range canvas.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
// The package registers itself as "record" in package backend.
package record
