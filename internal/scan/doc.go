// Package scan provides the orchestration logic for checking and
// normalizing artist credits across audio files.
//
// # Manager
//
// The Manager coordinates the entire process:
//
//  1. Discover audio files under the input paths
//  2. Read the configured credit frames from each file
//  3. Parse every credit concurrently
//  4. Report invalid credits
//  5. Rewrite credits in canonical form (optional)
//
// # Basic Usage
//
//	manager, err := scan.NewManager(settings, func(event scan.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	err = manager.Initialize(ctx, []string{"/music"})
//	err = manager.Run(ctx)
//
//	for _, track := range manager.Tracks() {
//	    ...
//	}
//
// # Concurrency
//
// Files are processed in parallel, bounded by settings.MaxConcurrentFiles.
// A file that cannot be read is reported and skipped; it does not stop the run.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
package scan
