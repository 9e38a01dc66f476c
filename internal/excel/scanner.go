package excel

import (
	"os"
	"path/filepath"
	"strings"
)

// FindInputFiles walks a directory and returns every .csv and .xlsx
// file in it, skipping hidden directories. Lock files Excel leaves next
// to an open workbook (~$ prefix) are ignored.
func FindInputFiles(dir string) ([]string, error) {
	var inputFiles []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != dir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(info.Name(), "~$") {
			return nil
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv", ".xlsx":
			inputFiles = append(inputFiles, path)
		}
		return nil
	})

	return inputFiles, err
}
