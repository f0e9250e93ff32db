package phenopacket

import (
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr error
		msg     string
	}{
		{
			name: "ok",
			opts: Options{VcfPath: "testdata/new.vcf", PhenopacketPath: "testdata/sample.json"},
		},
		{
			name: "ok with outdir",
			opts: Options{VcfPath: "testdata/new.vcf", PhenopacketPath: "testdata/sample.json", OutDir: "testdata"},
		},
		{
			name:    "missing vcf",
			opts:    Options{VcfPath: "testdata/nope.vcf", PhenopacketPath: "testdata/sample.json"},
			wantErr: ErrMissingFile,
			msg:     "Could not find vcf file at \"testdata/nope.vcf\"",
		},
		{
			name:    "missing phenopacket",
			opts:    Options{VcfPath: "testdata/new.vcf", PhenopacketPath: "testdata/nope.json"},
			wantErr: ErrMissingFile,
			msg:     "Could not find Phenopacket file at \"testdata/nope.json\"",
		},
		{
			name:    "vcf checked first",
			opts:    Options{VcfPath: "testdata/nope.vcf", PhenopacketPath: "testdata/nope.json"},
			wantErr: ErrMissingFile,
			msg:     "Could not find vcf file at \"testdata/nope.vcf\"",
		},
		{
			name:    "not json",
			opts:    Options{VcfPath: "testdata/new.vcf", PhenopacketPath: "testdata/sample.txt"},
			wantErr: ErrInvalidFormat,
			msg:     "phenopacket file must be JSON formated and end with .json",
		},
		{
			name:    "outdir is a file",
			opts:    Options{VcfPath: "testdata/new.vcf", PhenopacketPath: "testdata/sample.json", OutDir: "testdata/new.vcf"},
			wantErr: ErrMissingFile,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			if tt.msg != "" {
				require.EqualError(t, err, tt.msg)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	opts := Options{PhenopacketPath: "testdata/sample.json", OutDir: "/results", Extra: "run2", Date: testDate}
	got, err := opts.OutputPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/results", "sample-run2-07-Jan-2024.json"), got)
}

func TestOutputPathDefaultsToCwd(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	opts := Options{PhenopacketPath: "testdata/sample.json", Date: testDate}
	got, err := opts.OutputPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(cwd, "sample-07-Jan-2024.json"), got)
}
