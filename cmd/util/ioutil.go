package util

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindPythonFiles returns the Python scripts to profile, relative to the
// working directory. With recurse it walks every subfolder; otherwise it only
// picks up files sitting in the working directory itself.
func FindPythonFiles(recurse bool) ([]string, error) {
	if !recurse {
		return filepath.Glob("*.py")
	}
	var files []string
	err := filepath.WalkDir(".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".py") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// CleanOrCreateTempFolder makes sure path exists and is empty.
// file exist check is taken from: https://stackoverflow.com/questions/12518876/how-to-check-if-a-file-exists-in-go
func CleanOrCreateTempFolder(path string) error {
	if _, err := os.Stat(path); err == nil {
		// path/to/whatever exists
		if err := os.RemoveAll(path); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.MkdirAll(path, os.ModePerm)
}
