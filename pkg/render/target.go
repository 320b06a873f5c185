package render

// Target rasterizes batches into a frame. A frame is bracketed by Acquire
// and Release; Release must be called even when drawing fails.
type Target interface {
	Acquire() error
	Draw(b *Batch)
	Release()
}
