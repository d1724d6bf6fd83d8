// Package host exposes the bridge as flat, handle-based entry points for
// hosts that keep no Go pointers, such as foreign-function or RPC
// front ends.
//
// Every object lives behind a Handle owned by the caller. Instantiate
// calls write the new handle through an out parameter and leave it
// untouched when nothing matches, so a caller can initialize the out
// value to 0 and test it afterwards:
//
//	h := host.New()
//	file, _, result := h.FileNew(data, yamldoc.NewImporter(), backend)
//	if result != engine.ImportSuccess {
//		return
//	}
//	var artboard, scene host.Handle
//	h.Artboard(file, host.UseDefault, &artboard)
//	h.StateMachine(artboard, host.UseDefault, &scene)
//	for h.SceneAdvanceAndMaybeDraw(scene, canvas, dt, vp) {
//		for i := range h.EventCount(scene) {
//			ev, delay, _ := h.Event(scene, i)
//			...
//		}
//	}
//	h.SceneRelease(scene)
//	h.ArtboardRelease(artboard)
//	h.FileRelease(file)
//
// Names are UTF-8 byte spans. Spans that are not valid UTF-8 match
// nothing.
//
// A Host is not safe for concurrent use. Releasing a file while its
// artboards or scenes are alive is a caller error the host does not
// detect; released and stale handles resolve to nothing.
package host
