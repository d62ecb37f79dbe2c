package space

// Surface is the contract a concrete drawing surface fulfils for a Space.
// The loop only ever clears the surface and hands its Form to players; all
// actual drawing lives behind this interface.
type Surface interface {
	// Resize adjusts the underlying surface to the new size. The event is
	// the platform event that triggered the resize, if any.
	Resize(size Pt, ev Event)

	// Clear wipes the surface. Called once per frame while the space's
	// refresh flag is on.
	Clear()

	// Form returns the surface's drawing-primitive handle.
	Form() Form
}
