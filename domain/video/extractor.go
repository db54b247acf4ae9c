package video

import "context"

// FrameAudioExtractor defines the interface for the single-pass extraction of
// still frames and the audio track from a local video file
type FrameAudioExtractor interface {
	// Extract samples frames into the request's frames directory and writes
	// the audio track to the request's audio path in one invocation
	Extract(ctx context.Context, req *ExtractionRequest) error
}
