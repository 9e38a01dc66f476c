package excel

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"reportFmt/internal/prompt"
)

// ErrNotSaved reports that the workbook was not written, either because
// the user gave up or because the retry budget ran out.
var ErrNotSaved = errors.New("file not saved")

const lockPrompt = "Please close the excel file then type 'y' to continue: "

const defaultMaxAttempts = 3

// SaveOptions controls the retry loop around saving a workbook.
// Confirm asks whether to try again after a locked save and defaults to
// an interactive console prompt; Notify reports the outcome and
// defaults to stdout.
type SaveOptions struct {
	MaxAttempts int
	Confirm     func() (bool, error)
	Notify      func(string)
}

// SaveWithRetry saves the workbook to path, retrying when the file is
// locked by another process. Only lock errors are retried; anything
// else fails immediately.
func SaveWithRetry(editor *Editor, path string, opts SaveOptions) error {
	return saveWithRetry(func() error { return editor.SaveAs(path) }, path, opts)
}

func saveWithRetry(save func() error, path string, opts SaveOptions) error {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	if opts.Confirm == nil {
		opts.Confirm = func() (bool, error) { return prompt.Confirm(lockPrompt) }
	}
	if opts.Notify == nil {
		opts.Notify = func(msg string) { fmt.Println(msg) }
	}

	var saveErr error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		saveErr = save()
		if saveErr == nil {
			opts.Notify("File saved")
			return nil
		}
		if !IsFileLocked(saveErr) {
			return fmt.Errorf("failed to save file %s: %v", path, saveErr)
		}
		if attempt == opts.MaxAttempts {
			break
		}
		retry, err := opts.Confirm()
		if err != nil {
			opts.Notify("File not saved")
			return fmt.Errorf("confirm prompt failed: %v", err)
		}
		if !retry {
			break
		}
	}

	opts.Notify("File not saved")
	return fmt.Errorf("%w: %v", ErrNotSaved, saveErr)
}

// IsFileLocked reports whether an error looks like the output file being
// held open by another process, the usual state while the workbook is
// open in Excel.
func IsFileLocked(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, fs.ErrPermission) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "used by another process") ||
		strings.Contains(msg, "sharing violation")
}
