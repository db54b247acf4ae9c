package video

import (
	"strings"
	"testing"
)

func TestNewExtractionRequest(t *testing.T) {
	req, err := NewExtractionRequest("bad_apple.mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.FrameRate != 5 {
		t.Errorf("FrameRate = %d, want 5", req.FrameRate)
	}
	if req.FramesDir != "frames" {
		t.Errorf("FramesDir = %q, want %q", req.FramesDir, "frames")
	}
	if req.AudioCodec != "flac" {
		t.Errorf("AudioCodec = %q, want %q", req.AudioCodec, "flac")
	}
	if req.AudioPath != "bad_apple.flac" {
		t.Errorf("AudioPath = %q, want %q", req.AudioPath, "bad_apple.flac")
	}
}

func TestNewExtractionRequestMissingSource(t *testing.T) {
	_, err := NewExtractionRequest("")
	if err == nil {
		t.Fatal("expected error for empty source path")
	}
	if !strings.Contains(err.Error(), "source video path is required") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestExtractionRequestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ExtractionRequest)
		wantErr     bool
		errContains string
	}{
		{
			name:   "valid defaults",
			mutate: func(r *ExtractionRequest) {},
		},
		{
			name:        "zero frame rate",
			mutate:      func(r *ExtractionRequest) { r.FrameRate = 0 },
			wantErr:     true,
			errContains: "frame rate must be positive",
		},
		{
			name:        "negative frame rate",
			mutate:      func(r *ExtractionRequest) { r.FrameRate = -1 },
			wantErr:     true,
			errContains: "frame rate must be positive",
		},
		{
			name:        "missing frames directory",
			mutate:      func(r *ExtractionRequest) { r.FramesDir = "" },
			wantErr:     true,
			errContains: "frames directory is required",
		},
		{
			name:        "missing audio path",
			mutate:      func(r *ExtractionRequest) { r.AudioPath = "" },
			wantErr:     true,
			errContains: "audio output path is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewExtractionRequest("bad_apple.mp4")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.mutate(req)

			err = req.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestExtractionRequestFramePattern(t *testing.T) {
	tests := []struct {
		name      string
		framesDir string
		format    string
		want      string
	}{
		{
			name:      "defaults",
			framesDir: "frames",
			format:    "png",
			want:      "frames/%04d.png",
		},
		{
			name:      "custom directory",
			framesDir: "out/stills",
			format:    "png",
			want:      "out/stills/%04d.png",
		},
		{
			name:      "jpeg frames",
			framesDir: "frames",
			format:    "jpg",
			want:      "frames/%04d.jpg",
		},
		{
			name:      "empty format falls back to png",
			framesDir: "frames",
			format:    "",
			want:      "frames/%04d.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &ExtractionRequest{
				SourceVideoPath: "bad_apple.mp4",
				FrameRate:       DefaultFrameRate,
				FramesDir:       tt.framesDir,
				ImageFormat:     tt.format,
				AudioCodec:      DefaultAudioCodec,
				AudioPath:       DefaultAudioPath,
			}

			if got := req.FramePattern(); got != tt.want {
				t.Errorf("FramePattern() = %q, want %q", got, tt.want)
			}
		})
	}
}
