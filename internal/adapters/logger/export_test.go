package logger

// Exported for white-box testing of error formatting.
var (
	CollectMessages = collectMessages
	FormatMessages  = formatMessages
)
