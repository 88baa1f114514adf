package output

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If DOWNSTACK_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.downstack/logs/downstack.log
func GetLogFilePath() string {
	if customPath := os.Getenv("DOWNSTACK_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "downstack.log"
	}

	logDir := filepath.Join(homeDir, ".downstack", "logs")
	logFile := filepath.Join(logDir, "downstack.log")

	return logFile
}
