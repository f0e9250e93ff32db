package phenopacket

import (
	"path/filepath"
	"strings"
	"time"
)

// Dates in output names look like 07-Jan-2024.
const dateLayout string = "02-Jan-2006"

// OutputFilename builds <stem>[-<extra>]-<DD-Mon-YYYY>.json from the base name
// of phenopacketPath. An empty extra is left out.
func OutputFilename(phenopacketPath, extra string, date time.Time) (string, error) {
	base := filepath.Base(phenopacketPath)
	if !strings.HasSuffix(base, jsonSuffix) {
		return "", errNotJson
	}
	fields := []string{base[:len(base)-len(jsonSuffix)]}
	if extra != "" {
		fields = append(fields, extra)
	}
	fields = append(fields, date.Format(dateLayout))
	return strings.Join(fields, "-") + jsonSuffix, nil
}
