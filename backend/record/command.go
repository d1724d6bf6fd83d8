package record

import (
	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

// CommandType identifies a recorded renderer call.
type CommandType uint8

const (
	CmdSave CommandType = iota
	CmdRestore
	CmdTransform
	CmdClip
	CmdDrawPath
	CmdDrawImage
	CmdDrawImageMesh
)

var commandTypeNames = [...]string{
	CmdSave:          "Save",
	CmdRestore:       "Restore",
	CmdTransform:     "Transform",
	CmdClip:          "Clip",
	CmdDrawPath:      "DrawPath",
	CmdDrawImage:     "DrawImage",
	CmdDrawImageMesh: "DrawImageMesh",
}

// String returns the command name.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded renderer call.
type Command interface {
	Type() CommandType
}

// Save is a state push.
type Save struct{}

// Restore is a state pop.
type Restore struct{}

// Transform concatenates Matrix onto the current frame.
type Transform struct {
	Matrix geom.Mat2D
}

// Clip sets the clip to a snapshot of a path.
type Clip struct {
	Path Path
}

// DrawPath draws a snapshot of a path with a snapshot of a paint.
type DrawPath struct {
	Path  Path
	Paint Paint
	// CTM is the transform in effect when the call was made.
	CTM geom.Mat2D
}

// DrawImage draws an image.
type DrawImage struct {
	Image   *Image
	Blend   engine.BlendMode
	Opacity float32
	CTM     geom.Mat2D
}

// DrawImageMesh draws an image mapped onto triangles.
type DrawImageMesh struct {
	Image    *Image
	Vertices []geom.Vec2D
	UVs      []geom.Vec2D
	Indices  []uint16
	Blend    engine.BlendMode
	Opacity  float32
	CTM      geom.Mat2D
}

func (Save) Type() CommandType          { return CmdSave }
func (Restore) Type() CommandType       { return CmdRestore }
func (Transform) Type() CommandType     { return CmdTransform }
func (Clip) Type() CommandType          { return CmdClip }
func (DrawPath) Type() CommandType      { return CmdDrawPath }
func (DrawImage) Type() CommandType     { return CmdDrawImage }
func (DrawImageMesh) Type() CommandType { return CmdDrawImageMesh }
