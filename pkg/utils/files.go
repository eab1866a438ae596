package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StdinName is the path that makes ReadSource read from its reader.
const StdinName = "-"

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// ReadSource loads a program either from path or, when path is "-", from stdin.
// The returned name is the absolute file path or "<stdin>".
func ReadSource(path string, stdin io.Reader) (src string, name string, err error) {
	if path == StdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}

	fullPath, _, err := GetPathInfo(path)
	if err != nil {
		return "", "", fmt.Errorf("resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", "", fmt.Errorf("read source: %w", err)
	}
	return string(data), fullPath, nil
}
