package phenopacket

import (
	"bufio"
	"io"
	"strings"
)

const uriKey string = "\"uri\""

// IsUriLine reports whether the trimmed line starts with the "uri" key.
func IsUriLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), uriKey)
}

// UriLine is the replacement written for every uri line. The vcf path is
// inserted verbatim.
func UriLine(vcfPath string) string {
	return "    " + uriKey + ": \"file:/" + vcfPath + "\",\n"
}

// RewriteUri copies r to w line by line, swapping each uri line for UriLine(vcfPath).
// All other lines keep their original bytes and terminators. It returns the
// number of lines replaced.
func RewriteUri(r io.Reader, w io.Writer, vcfPath string) (int, error) {
	var line string
	var err, readErr error
	var replaced int
	reader, ok := r.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(r)
	}
	newLine := UriLine(vcfPath)

	for readErr == nil {
		line, readErr = reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return replaced, readErr
		}
		if line == "" {
			continue
		}
		if IsUriLine(line) {
			line = newLine
			replaced++
		}
		if _, err = io.WriteString(w, line); err != nil {
			return replaced, err
		}
	}
	return replaced, nil
}
