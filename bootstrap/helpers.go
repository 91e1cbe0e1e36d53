package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// EnsureDataDir creates the directory holding the SQLite database and
// verifies it is writable. This is a pre-flight check that runs before any
// service initialization.
func EnsureDataDir(sqlitePath string, sugar *zap.SugaredLogger) error {
	dir := filepath.Dir(sqlitePath)

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path for %s: %w", dir, err)
	}

	if err := os.MkdirAll(absPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// Verify write permissions
	testFile := filepath.Join(absPath, ".cityhive_write_test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		return fmt.Errorf("directory %s is not writable: %w", dir, err)
	}
	os.Remove(testFile)

	sugar.Infow("Data directory ready", "path", absPath)
	return nil
}
