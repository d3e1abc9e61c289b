package px

// Surface is the destination every primitive draws into.
//
// Pixels returns the row-major buffer of Width()*Height() packed colors with
// the origin at the top-left corner. The slice is written in place, so it
// must stay valid for as long as the surface is drawn to. Present pushes the
// buffer to wherever the surface displays it and reports success.
//
// Surfaces are not safe for concurrent use. A surface is owned by a single
// Renderer or Canvas for the duration of each call.
type Surface interface {
	Width() int
	Height() int
	Pixels() []Color
	Present() bool
}
