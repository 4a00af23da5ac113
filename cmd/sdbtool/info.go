package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sdbkit/sdb/info"
)

var (
	infoJSON bool
	infoYAML bool
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <input.sdb>",
		Short: "Show database version, description, id and platform",
		Long: `The info command reads the header and the top-level DATABASE tag of a
shim database and reports its format version, description, database id and
runtime platform.

Example:
  sdbtool info sysmain.sdb
  sdbtool info sysmain.sdb --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	cmd.Flags().BoolVar(&infoJSON, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&infoYAML, "yaml", false, "Output in YAML format")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")
	return cmd
}

func runInfo(args []string) error {
	dbPath := args[0]

	printVerbose("Opening database: %s\n", dbPath)

	inf, err := info.GetFile(dbPath)
	if err != nil {
		return err
	}

	switch {
	case infoJSON:
		return printJSON(inf)
	case infoYAML:
		return printYAML(inf)
	}

	printInfo("Database Information:\n")
	printInfo("  File: %s\n", dbPath)
	printInfo("  Version: %d.%d\n", inf.Major, inf.Minor)
	if inf.Description != "" {
		printInfo("  Description: %s\n", inf.Description)
	}
	if inf.HasID() {
		printInfo("  ID: {%s}\n", inf.ID)
	}
	printInfo("  Flags: 0x%08x\n", inf.Flags)
	printInfo("  Runtime platform: %s\n", platformText(inf))
	return nil
}

func platformText(inf *info.Information) string {
	if inf.PlatformLabel == "" {
		return fmt.Sprintf("%d", inf.RuntimePlatform)
	}
	return fmt.Sprintf("%d (%s)", inf.RuntimePlatform, inf.PlatformLabel)
}
