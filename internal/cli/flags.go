package cli

import (
	"github.com/spf13/cobra"

	"github.com/vietdv277/cirrus/internal/cmdlet"
)

// Flags are the cross-cutting flags of an operation command.
type Flags struct {
	Force           bool
	Select          string
	PassThru        bool
	PageSize        int32
	NextToken       string
	NoAutoIteration bool

	cmd      *cobra.Command
	required []requiredFlag
	omitted  []string
}

// requiredFlag ties a required parameter to the flags that can supply it.
type requiredFlag struct {
	param string
	flags []string
}

// Register adds the flags relevant to cmd. Mutating commands get --force,
// list commands get the paging flags.
func (f *Flags) Register(cmd *cobra.Command, mutating, paged bool) {
	f.cmd = cmd
	flags := cmd.Flags()
	flags.StringVarP(&f.Select, "select", "s", "", `Response field to output, "*" for the whole response, "^Param" to echo a parameter`)
	flags.BoolVar(&f.PassThru, "passthru", false, "Output the main parameter instead of the response")

	if mutating {
		flags.BoolVarP(&f.Force, "force", "f", false, "Skip the confirmation prompt")
	}

	if paged {
		flags.Int32Var(&f.PageSize, "page-size", 0, "Items per request (service default when 0)")
		flags.StringVar(&f.NextToken, "next-token", "", "Continuation token; fetches a single page")
		flags.BoolVar(&f.NoAutoIteration, "no-auto-iteration", false, "Fetch only the first page")
	}
}

// Require declares that param is supplied by any one of flags. A param none of whose
// flags was given on the command line is reported as omitted; `--flag ""` is not.
func (f *Flags) Require(param string, flags ...string) {
	f.required = append(f.required, requiredFlag{param: param, flags: flags})
}

// Omit reports param as omitted, for parameters that do not come from a flag.
func (f *Flags) Omit(param string) {
	f.omitted = append(f.omitted, param)
}

// omittedParams consumes the params passed to Omit.
func (f *Flags) omittedParams() []string {
	omitted := f.omitted
	f.omitted = nil
	if f.cmd == nil {
		return omitted
	}

	for _, r := range f.required {
		given := false
		for _, name := range r.flags {
			if f.cmd.Flags().Changed(name) {
				given = true
				break
			}
		}
		if !given {
			omitted = append(omitted, r.param)
		}
	}
	return omitted
}

func (f *Flags) settings() cmdlet.Settings {
	return cmdlet.Settings{
		Select:          f.Select,
		PassThru:        f.PassThru,
		Force:           f.Force,
		NoAutoIteration: f.NoAutoIteration,
		StartToken:      f.NextToken,
		PageSize:        f.PageSize,
		Omitted:         f.omittedParams(),
	}
}
