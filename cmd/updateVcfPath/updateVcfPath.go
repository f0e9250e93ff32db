package main

import (
	"errors"
	"flag"
	"fmt"
	"github.com/dasnellings/PhenopacketVcf/phenopacket"
	"io"
	"log"
	"os"
	"time"
)

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprint(fs.Output(),
			"updateVcfPath - Update the VCF path in a phenopacket.\n"+
				"Usage:\n"+
				"./updateVcfPath -v <vcf> -p <phenopacket> [-o <outdir>] [-x <extra>]\n\n")
		fs.PrintDefaults()
	}
}

func parseArgs(args []string, output io.Writer) (phenopacket.Options, error) {
	var opts phenopacket.Options
	fs := flag.NewFlagSet("updateVcfPath", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = usage(fs)
	fs.StringVar(&opts.VcfPath, "v", "", "path to VCF file (long form -vcf)")
	fs.StringVar(&opts.VcfPath, "vcf", "", "path to VCF file")
	fs.StringVar(&opts.PhenopacketPath, "p", "", "Path to phenopacket (long form -phenopacket)")
	fs.StringVar(&opts.PhenopacketPath, "phenopacket", "", "Path to phenopacket")
	fs.StringVar(&opts.OutDir, "o", "", "Path to output dir (default: cwd) (long form -outdir)")
	fs.StringVar(&opts.OutDir, "outdir", "", "Path to output dir (default: cwd)")
	fs.StringVar(&opts.Extra, "x", "", "extra name part for output file (long form -extra)")
	fs.StringVar(&opts.Extra, "extra", "", "extra name part for output file")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.VcfPath == "" || opts.PhenopacketPath == "" {
		fs.Usage()
		return opts, fmt.Errorf("VCF and phenopacket files are required (-v, -p)")
	}
	return opts, nil
}

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(0)

	opts, err := parseArgs(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("[ERROR] %s", err)
	}
	if _, err = updateVcfPath(opts); err != nil {
		log.Fatalf("[ERROR] %s", err)
	}
}

func updateVcfPath(opts phenopacket.Options) (string, error) {
	if opts.Date.IsZero() {
		opts.Date = time.Now()
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}
	outPath, err := opts.OutputPath()
	if err != nil {
		return "", err
	}
	log.Printf("[INFO] Will output updated phenopacket to %s", outPath)
	return phenopacket.Update(opts)
}
