// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRunID     = "run_id"
	FieldChannelID = "channel_id"
	FieldVideoID   = "video_id"
	FieldHandle    = "handle"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"
	FieldOp        = "op"

	// Path fields
	FieldPath = "path"
)
