package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sdbkit/internal/config"
	"github.com/joshuapare/sdbkit/internal/logger"
	"github.com/joshuapare/sdbkit/internal/writer"
	"github.com/joshuapare/sdbkit/sdb/sdb2xml"
)

var (
	sdb2xmlOutput      string
	sdb2xmlExclude     []string
	sdb2xmlAnnotations string
	sdb2xmlWithTagID   bool
	sdb2xmlWithTag     bool
	sdb2xmlConfig      string
)

// autoExclude is what the "auto" exclusion expands to: the lookup indexes
// and the string table, whose contents are already rendered inline.
var autoExclude = []string{"INDEXES", "STRINGTABLE"}

func newSDB2XMLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sdb2xml <input.sdb>",
		Short: "Convert a shim database to XML",
		Long: `The sdb2xml command renders the tag tree of a shim database as XML.
Known values (flags, link dates, file times, tag references and GUIDs) are
decoded into comments unless --annotations disabled is given.

Example:
  sdbtool sdb2xml sysmain.sdb
  sdbtool sdb2xml sysmain.sdb --output sysmain.xml --exclude auto
  sdbtool sdb2xml sysmain.sdb --exclude PATCH,INDEXES --with-tagid --with-tag
  sdbtool sdb2xml sysmain.sdb --config sdbtool.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSDB2XML(cmd, args)
		},
	}
	cmd.Flags().StringVarP(&sdb2xmlOutput, "output", "o", "-", "Path to the output XML file, or '-' for stdout")
	cmd.Flags().StringSliceVar(&sdb2xmlExclude, "exclude", nil, "Tag names to leave out with their subtrees ('auto' = INDEXES,STRINGTABLE)")
	cmd.Flags().StringVar(&sdb2xmlAnnotations, "annotations", string(sdb2xml.Comment), "Annotation mode (comment, disabled)")
	cmd.Flags().BoolVar(&sdb2xmlWithTagID, "with-tagid", false, "Add the tag offset as a tagid attribute")
	cmd.Flags().BoolVar(&sdb2xmlWithTag, "with-tag", false, "Add the raw tag code as a tag attribute")
	cmd.Flags().StringVar(&sdb2xmlConfig, "config", "", "YAML profile with sdb2xml defaults")
	return cmd
}

func runSDB2XML(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	opts, err := sdb2xmlOptions(cmd)
	if err != nil {
		return err
	}
	printVerbose("Converting %s (exclude %v, annotations %s)\n", inputPath, opts.ExcludeTags, opts.Annotations)

	if sdb2xmlOutput == "" || sdb2xmlOutput == "-" {
		return sdb2xml.ConvertFile(inputPath, os.Stdout, opts)
	}
	out := &writer.FileWriter{Path: sdb2xmlOutput}
	if err := out.WriteWith(func(w io.Writer) error {
		return sdb2xml.ConvertFile(inputPath, w, opts)
	}); err != nil {
		return err
	}
	printInfo("Wrote %s\n", sdb2xmlOutput)
	return nil
}

// sdb2xmlOptions merges the profile (if any) with the flags given
// explicitly on the command line.
func sdb2xmlOptions(cmd *cobra.Command) (sdb2xml.Options, error) {
	profile := config.Default()
	if sdb2xmlConfig != "" {
		p, err := config.Load(sdb2xmlConfig)
		if err != nil {
			return sdb2xml.Options{}, err
		}
		profile = p
	}
	c := profile.SDB2XML

	flags := cmd.Flags()
	if flags.Changed("exclude") {
		c.Exclude = sdb2xmlExclude
	}
	if flags.Changed("annotations") {
		c.Annotations = sdb2xmlAnnotations
	}
	if flags.Changed("with-tagid") {
		c.WithTagID = sdb2xmlWithTagID
	}
	if flags.Changed("with-tag") {
		c.WithTag = sdb2xmlWithTag
	}

	ann, err := sdb2xml.ParseAnnotations(c.Annotations)
	if err != nil {
		return sdb2xml.Options{}, err
	}
	return sdb2xml.Options{
		ExcludeTags: expandExcludes(c.Exclude),
		Annotations: ann,
		WithTagID:   c.WithTagID,
		WithTag:     c.WithTag,
		MaxDepth:    c.MaxDepth,
		Logger:      logger.L,
	}, nil
}

// expandExcludes replaces "auto" with autoExclude and drops duplicates.
func expandExcludes(names []string) []string {
	var out []string
	seen := make(map[string]bool, len(names))
	add := func(n string) {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, n := range names {
		if n == "auto" {
			for _, a := range autoExclude {
				add(a)
			}
			continue
		}
		add(n)
	}
	return out
}
