package geometry

import "time"

// Header carries the sequence number, acquisition time and coordinate frame
// of a stamped record.
type Header struct {
	Seq     uint32    `json:"seq"      yaml:"seq"`
	Stamp   time.Time `json:"stamp"    yaml:"stamp"`
	FrameID string    `json:"frame_id" yaml:"frame_id"`
}
