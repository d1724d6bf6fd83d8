package animbridge

// primitiveKind names the kind of backend resource an adapter wraps.
type primitiveKind uint8

const (
	kindBuffer primitiveKind = iota
	kindPath
	kindPaint
	kindGradient
	kindImage
	numKinds
)

func (k primitiveKind) String() string {
	switch k {
	case kindBuffer:
		return "buffer"
	case kindPath:
		return "path"
	case kindPaint:
		return "paint"
	case kindGradient:
		return "gradient"
	case kindImage:
		return "image"
	default:
		return "unknown"
	}
}

// refs is the reference count embedded in every adapter. It starts at
// one, owned by whoever asked the factory for the primitive. release
// runs once, on the Unref that drops the count to zero.
type refs struct {
	count   int32
	release func()
}

func newRefs(release func()) refs {
	return refs{count: 1, release: release}
}

// Ref adds an owner.
func (r *refs) Ref() { r.count++ }

// Unref drops an owner and releases the backend handle with the last one.
func (r *refs) Unref() {
	r.count--
	if r.count != 0 {
		return
	}
	if release := r.release; release != nil {
		r.release = nil
		release()
	}
}
