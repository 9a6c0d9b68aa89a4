// Package validation contains the field validators of the interactive form.
package validation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/defend-your-code/form/internal/application/adapter"
	"github.com/defend-your-code/form/internal/domain/entity"
	domainerror "github.com/defend-your-code/form/internal/domain/error"
	"github.com/defend-your-code/form/internal/domain/valueobject"
)

const (
	textFileExtension = ".txt"

	// reservedPathChars are refused in any path on any platform.
	reservedPathChars = `<>:"|?*`
)

var (
	outputFileRegex = regexp.MustCompile(`^[A-Za-z0-9_\-. ]+\.txt$`)

	// Device names Windows reserves regardless of extension.
	reservedDeviceNames = map[string]struct{}{
		"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
		"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {}, "COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
		"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {}, "LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
	}
)

// ValidateInputFile accepts a path to an existing, readable .txt file.
// Relative and absolute paths are allowed; ".." segments are not.
func (v *Validator) ValidateInputFile(path string) valueobject.Result {
	if !isSafeInputPath(path) {
		return v.reject(entity.FieldInputFile, domainerror.ErrCodeInvalidInputFile,
			"Please input a valid file name (.txt files only, no reserved characters).",
			domainerror.ErrInvalidFileName)
	}

	if hasTraversalSegment(path) {
		return v.reject(entity.FieldInputFile, domainerror.ErrCodeInputTraversal,
			"File paths may not contain \"..\".",
			domainerror.ErrPathTraversal)
	}

	switch v.files.Inspect(path) {
	case adapter.FileStateMissing:
		return v.rejectRedacted(entity.FieldInputFile, domainerror.ErrCodeInputNotFound,
			fmt.Sprintf("%q does not exist.", path),
			"Input file does not exist.",
			domainerror.ErrFileNotFound)
	case adapter.FileStateUnreadable:
		return v.rejectRedacted(entity.FieldInputFile, domainerror.ErrCodeInputNotReadable,
			fmt.Sprintf("%q is not a readable file.", path),
			"Input file is not a readable file.",
			domainerror.ErrFileNotReadable)
	}

	return valueobject.Valid()
}

// ValidateOutputFile accepts a bare .txt file name that does not exist yet
// in the output directory.
func (v *Validator) ValidateOutputFile(name string) valueobject.Result {
	if strings.Contains(name, "..") {
		return v.reject(entity.FieldOutputFile, domainerror.ErrCodeOutputTraversal,
			"File names may not contain \"..\".",
			domainerror.ErrPathTraversal)
	}

	if !outputFileRegex.MatchString(name) || isReservedDeviceName(name) {
		return v.reject(entity.FieldOutputFile, domainerror.ErrCodeInvalidOutputFile,
			"Please input a valid file name (.txt files only; letters, digits, spaces, '.', '-' and '_').",
			domainerror.ErrInvalidFileName)
	}

	if v.files.Inspect(filepath.Join(v.opts.OutputDir, name)) != adapter.FileStateMissing {
		return v.rejectRedacted(entity.FieldOutputFile, domainerror.ErrCodeOutputExists,
			fmt.Sprintf("%q already exists.", name),
			"Output file already exists.",
			domainerror.ErrFileAlreadyExists)
	}

	return valueobject.Valid()
}

// isSafeInputPath checks the extension and refuses reserved and control characters.
// A leading volume name such as "C:" is ignored.
func isSafeInputPath(path string) bool {
	base := path
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		base = path[i+1:]
	}
	if !strings.HasSuffix(base, textFileExtension) || len(base) == len(textFileExtension) {
		return false
	}

	rest := path[len(filepath.VolumeName(path)):]
	for _, r := range rest {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(reservedPathChars, r) {
			return false
		}
	}
	return true
}

func hasTraversalSegment(path string) bool {
	for _, segment := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if segment == ".." {
			return true
		}
	}
	return false
}

func isReservedDeviceName(name string) bool {
	stem := name
	if i := strings.IndexByte(name, '.'); i >= 0 {
		stem = name[:i]
	}
	_, reserved := reservedDeviceNames[strings.ToUpper(strings.TrimSpace(stem))]
	return reserved
}
