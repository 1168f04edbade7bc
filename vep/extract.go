package vep

import (
	"fmt"
	"strings"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"github.com/vertgenlab/gonomics/vcf"
)

// ExtractColumns reads a split-VEP annotated VCF and writes a TSV with
// fixed CHROM, POS, REF and ALT columns followed by the requested vep_
// annotation fields. Fields are named without the vep_ prefix; a field
// absent from a record is written as ".".
func ExtractColumns(vcfFile, outfile string, fields []string) {
	vcfChan, _ := vcf.GoReadToChan(vcfFile)

	out := fileio.EasyCreate(outfile)
	fmt.Fprintf(out, "CHROM\tPOS\tREF\tALT\t%s\n", strings.Join(fields, "\t"))
	for v := range vcfChan {
		vals := make([]string, len(fields))
		for i, f := range fields {
			vals[i] = infoValue(v.Info, "vep_"+f)
		}
		fmt.Fprintf(out, "%s\t%d\t%s\t%s\t%s\n", v.Chr, v.Pos, v.Ref, strings.Join(v.Alt, ","), strings.Join(vals, "\t"))
	}
	err := out.Close()
	exception.PanicOnErr(err)
}

// infoValue pulls one tag out of a semicolon-delimited INFO string.
// Flag tags without a value and missing tags both return ".".
func infoValue(info, tag string) string {
	for _, kv := range strings.Split(info, ";") {
		key, val, found := strings.Cut(kv, "=")
		if key != tag {
			continue
		}
		if !found || val == "" {
			return "."
		}
		return val
	}
	return "."
}
