// Package frames writes rotation frames to a directory.
package frames

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const manifestName = "frames.json"

// Frame is one manifest entry.
type Frame struct {
	Index int     `json:"index"`
	Angle float64 `json:"angle"`
	File  string  `json:"file"`
}

// DirSink implements domain.FrameSink by writing frame-NNN.svg files.
// Close writes frames.json listing every frame in order.
type DirSink struct {
	dir    string
	frames []Frame
}

// New creates dir if needed and returns a sink writing into it.
func New(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating frame directory: %w", err)
	}
	return &DirSink{dir: dir}, nil
}

// FileName returns the file name of frame index.
func FileName(index int) string {
	return fmt.Sprintf("frame-%03d.svg", index)
}

func (s *DirSink) WriteFrame(index int, angle float64, svg []byte) error {
	name := FileName(index)
	if err := os.WriteFile(filepath.Join(s.dir, name), svg, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	s.frames = append(s.frames, Frame{Index: index, Angle: angle, File: name})
	return nil
}

// Frames returns the frames written so far.
func (s *DirSink) Frames() []Frame {
	return append([]Frame(nil), s.frames...)
}

// Close writes the manifest.
func (s *DirSink) Close() error {
	data, err := json.MarshalIndent(s.frames, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, manifestName), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", manifestName, err)
	}
	return nil
}
