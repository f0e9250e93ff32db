package phenopacket

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const jsonSuffix string = ".json"

var (
	ErrMissingFile   = errors.New("missing file")
	ErrInvalidFormat = errors.New("invalid format")

	errNotJson error = &InputError{Kind: ErrInvalidFormat, Msg: "phenopacket file must be JSON formated and end with .json"}
)

// InputError is a validation failure. Kind is ErrMissingFile or
// ErrInvalidFormat and is matched by errors.Is.
type InputError struct {
	Kind error
	Msg  string
}

func (e *InputError) Error() string {
	return e.Msg
}

func (e *InputError) Unwrap() error {
	return e.Kind
}

func inputErrorf(kind error, format string, args ...interface{}) error {
	return &InputError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Options holds everything needed for one update. OutDir defaults to the
// current working directory and a zero Date means today.
type Options struct {
	VcfPath         string
	PhenopacketPath string
	OutDir          string
	Extra           string
	Date            time.Time
}

// Validate checks the inputs before any file is opened for writing.
func (o Options) Validate() error {
	if !exists(o.VcfPath) {
		return inputErrorf(ErrMissingFile, "Could not find vcf file at \"%s\"", o.VcfPath)
	}
	if !exists(o.PhenopacketPath) {
		return inputErrorf(ErrMissingFile, "Could not find Phenopacket file at \"%s\"", o.PhenopacketPath)
	}
	if !strings.HasSuffix(filepath.Base(o.PhenopacketPath), jsonSuffix) {
		return errNotJson
	}
	if o.OutDir != "" {
		info, err := os.Stat(o.OutDir)
		if err != nil || !info.IsDir() {
			return inputErrorf(ErrMissingFile, "Could not find output directory at \"%s\"", o.OutDir)
		}
	}
	return nil
}

// OutputPath is the location the updated phenopacket will be written to.
func (o Options) OutputPath() (string, error) {
	var err error
	outDir := o.OutDir
	if outDir == "" {
		outDir, err = os.Getwd()
		if err != nil {
			return "", err
		}
	}
	date := o.Date
	if date.IsZero() {
		date = time.Now()
	}
	name, err := OutputFilename(o.PhenopacketPath, o.Extra, date)
	if err != nil {
		return "", err
	}
	return filepath.Join(outDir, name), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
