// Package recording captures drawing operations as typed commands that can
// be played back to different backends.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: captures drawing operations as commands
//   - Recording: stores commands for playback, immutable once finished
//   - Backend: renders commands to a specific output
//
// A [Command] pairs a drawable [Shape] with a [Style]. The style embeds a
// [tint.Color] unchanged; backends decide how to read it, so a color stays
// in whatever shape (RGBA or HSVA) it was recorded in.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(200, 100)
//	rec.SetColor(tint.HSV(200, 0.6, 0.9))
//	rec.DrawSquare(tint.Rect{X: 10, Y: 10, W: 80, H: 80})
//	r := rec.FinishRecording()
//
//	backend, _ := recording.NewBackend("raster")
//	if err := r.Playback(backend); err != nil {
//	    // handle error
//	}
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import _ "github.com/gogpu/tint/recording/backends/raster"
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are immutable
// after FinishRecording and can be played back from multiple goroutines,
// each to its own backend.
package recording
