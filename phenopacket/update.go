package phenopacket

import (
	"bufio"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// Update writes a copy of the phenopacket with its uri line pointing at the
// vcf file and returns the path of the new file. Nothing is left on disk
// unless the whole copy succeeds.
func Update(opts Options) (string, error) {
	var err error
	var outPath string
	if err = opts.Validate(); err != nil {
		return "", err
	}
	if outPath, err = opts.OutputPath(); err != nil {
		return "", err
	}
	if _, err = updateToFile(opts.PhenopacketPath, outPath, opts.VcfPath); err != nil {
		return "", err
	}
	return outPath, nil
}

// updateToFile opens both files strictly by name. The fileio Easy* helpers
// are not used here since they route names containing "http" or starting
// with "stdin"/"stdout" away from the local file.
func updateToFile(inFile, outFile, vcfPath string) (int, error) {
	in := fileio.MustOpen(inFile)
	defer func() {
		exception.PanicOnErr(in.Close())
	}()

	out := fileio.MustCreate(outFile)
	buf := bufio.NewWriter(out)
	replaced, err := RewriteUri(bufio.NewReader(in), buf, vcfPath)
	if err == nil {
		err = buf.Flush()
	}
	closeErr := out.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		fileio.MustRemove(outFile)
		return replaced, err
	}
	return replaced, nil
}
