package status

// Level classifies a status message for presentation.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Message is the human-readable outcome of a storefront command.
// Every command produces exactly one message; the presentation layer
// decides how to surface it.
type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

func Success(text string) Message { return Message{Level: LevelSuccess, Text: text} }
func Info(text string) Message    { return Message{Level: LevelInfo, Text: text} }
func Warning(text string) Message { return Message{Level: LevelWarning, Text: text} }
func Error(text string) Message   { return Message{Level: LevelError, Text: text} }
