// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package cli wires the change list generator to the command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	cmx3600 "github.com/mrjoshuak/cmx3600-changelist"
	"github.com/spf13/cobra"
)

// ErrUsage is returned when the command is invoked with the wrong arguments.
var ErrUsage = errors.New("usage: edlchangelist old.edl new.edl output.txt")

type options struct {
	fps      int
	strict   bool
	edlPath  string
	docxPath string
}

// NewRootCmd builds the edlchangelist command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "edlchangelist <old.edl> <new.edl> <output.txt>",
		Short: "Generate a change list between two CMX 3600 EDLs",
		Long: `edlchangelist compares an old and a new CMX 3600 EDL event by event and
writes a tab-separated change list of clips that were added or trimmed.

Events are compared by position. Unchanged events and events removed from
the end of the new EDL are not listed.

Examples:
  # Write the change list
  edlchangelist reel1_v1.edl reel1_v2.edl changes.txt

  # Use a 25 fps timebase and also write a change EDL and a Word report
  edlchangelist --fps 25 --edl changes.edl --docx changes.docx v1.edl v2.edl changes.txt`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				fmt.Fprintln(cmd.OutOrStdout(), ErrUsage.Error())
				return ErrUsage
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
			return run(logger, opts, args[0], args[1], args[2])
		},
	}

	cmd.Flags().IntVar(&opts.fps, "fps", cmx3600.DefaultRate, "Frame rate of the EDL timecodes")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Reject events with out of range timecodes")
	cmd.Flags().StringVar(&opts.edlPath, "edl", "", "Also write the added and changed events as a CMX 3600 EDL")
	cmd.Flags().StringVar(&opts.docxPath, "docx", "", "Also write the change list as a Word document")

	return cmd
}

// Execute runs the command with os.Args and returns the process exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command with args and returns the process exit code:
// 0 on success, 1 on a usage error or any failure.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, ErrUsage) {
			log.New(stderr, "", log.LstdFlags).Printf("Error: %v", err)
		}
		return 1
	}
	return 0
}

func run(logger *log.Logger, opts *options, oldPath, newPath, outputPath string) error {
	logger.Println("EDL Change List Generator")

	oldEdits, err := cmx3600.ReadFile(oldPath, opts.fps, opts.strict)
	if err != nil {
		return fmt.Errorf("reading old EDL: %w", err)
	}
	newEdits, err := cmx3600.ReadFile(newPath, opts.fps, opts.strict)
	if err != nil {
		return fmt.Errorf("reading new EDL: %w", err)
	}
	logger.Printf("Parsed %d edits from old EDL, %d from new.", len(oldEdits), len(newEdits))

	changes, err := cmx3600.Compare(oldEdits, newEdits, opts.fps)
	if err != nil {
		return fmt.Errorf("comparing EDLs: %w", err)
	}

	if err := cmx3600.WriteChangeListFile(outputPath, changes, opts.fps); err != nil {
		return fmt.Errorf("writing change list: %w", err)
	}
	logger.Printf("Change list written to %s", outputPath)

	title := filepath.Base(newPath) + " changes"

	if opts.edlPath != "" {
		if err := writeChangeEDL(opts.edlPath, title, changes); err != nil {
			return fmt.Errorf("writing change EDL: %w", err)
		}
		logger.Printf("Change EDL written to %s", opts.edlPath)
	}

	if opts.docxPath != "" {
		if err := writeReport(opts.docxPath, title, changes, opts.fps); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logger.Printf("Report written to %s", opts.docxPath)
	}

	return nil
}

func writeChangeEDL(path, title string, changes []cmx3600.Change) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	encoder := cmx3600.NewEncoder(f)
	encoder.SetTitle(title)
	if err := encoder.Encode(cmx3600.ChangeEDL(changes)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeReport(path, title string, changes []cmx3600.Change, rate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := cmx3600.WriteDocxReport(f, changes, rate, title); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
