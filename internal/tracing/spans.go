package tracing

// Span attribute keys used across edesto.
const (
	// Board attributes
	AttrBoardSlug = "board.slug"
	AttrBoardFQBN = "board.fqbn"
	AttrPort      = "port"

	// Generation attributes
	AttrGenerationID = "generation.id"
	AttrChecksum     = "generation.checksum"
	AttrArtifact     = "artifact.path"

	// Detection attributes
	AttrDetectionCount = "detect.count"

	// Error attributes
	AttrErrorMessage = "error.message"
)

// Span names for consistent naming across commands.
const (
	SpanRender  = "compose.render"
	SpanWrite   = "artifact.write"
	SpanDetect  = "detect.scan"
	SpanHistory = "history.record"
)
