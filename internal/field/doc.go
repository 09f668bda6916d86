// Package field simulates the drifting "constellation" particles drawn
// behind the portfolio page.
//
// A [Field] owns a set of particles sized to a drawing [Surface]. Each call
// to [Field.Frame] clears the surface, integrates every particle one tick,
// pulls particles toward the pointer, reflects them off the surface edges,
// applies friction and draws the particles plus a line between every pair
// closer than the link distance.
//
// Colours come from a [theme.Source] that is sampled once per frame, so a
// theme switch shows up on the very next frame.
//
// # Example
//
//	f, _ := field.New(canvas, themes, field.Config{Params: field.DefaultParams()})
//	ticker := time.NewTicker(time.Second / 60)
//	defer ticker.Stop()
//	go f.Run(ctx, ticker.C)
//	...
//	f.Stop()
//
// # Thread Safety
//
// All methods may be called from any goroutine. [Field.Run] is the only
// frame loop allowed per Field; a second concurrent call fails with
// [ErrAlreadyRunning].
package field
