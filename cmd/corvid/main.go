// This file is part of corvid, a stack-oriented concatenative runtime.
//
// Copyright 2026 The Corvid Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command corvid runs programs written in a small stack-oriented, postfix
// language in the lineage of RPL.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corvidlang/corvid/boot"
	"github.com/corvidlang/corvid/vm"
)

var (
	cfgFile   string
	callDepth int
	cpDepth   int
	maxRead   int
	baseDir   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "corvid",
		Short:         "corvid runs programs written in a small stack-oriented, postfix language",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML runtime configuration file")
	root.PersistentFlags().IntVar(&callDepth, "call-depth", 0, "override the recursion depth cap")
	root.PersistentFlags().IntVar(&cpDepth, "cp-depth", 0, "override the structural-copy/cycle-detection depth cap")
	root.PersistentFlags().IntVar(&maxRead, "max-read", 0, "override the per-file read cap in bytes")
	root.PersistentFlags().StringVar(&baseDir, "base-dir", "", "override the bootstrap base directory")

	root.AddCommand(newRunCmd(), newBootCmd(), newTypesCmd(), newDumpCmd())
	return root
}

func buildSystem() (*boot.System, error) {
	cfg := vm.DefaultConfig()
	if cfgFile != "" {
		loaded, err := vm.LoadConfig(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	opts := []vm.Option{vm.WithConfig(cfg)}
	if callDepth > 0 {
		opts = append(opts, vm.WithCallDepth(callDepth))
	}
	if cpDepth > 0 {
		opts = append(opts, vm.WithCopyDepth(cpDepth))
	}
	if maxRead > 0 {
		opts = append(opts, vm.WithMaxRead(maxRead))
	}
	if baseDir != "" {
		opts = append(opts, vm.WithBaseDir(baseDir))
	}
	return boot.New(opts...), nil
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "parse and evaluate a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := buildSystem()
			if err != nil {
				return err
			}
			if err := sys.RunFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stack depth: %d\n", sys.RT.Stack.Len())
			return nil
		},
	}
}

func newBootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boot",
		Short: "run the configured boot file out of the base directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := buildSystem()
			if err != nil {
				return err
			}
			return sys.Boot()
		},
	}
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "print a token-level trace of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			out, err := boot.Dump(string(data))
			fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "print the live type registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := buildSystem()
			if err != nil {
				return err
			}
			for id, name := range sys.RT.Types.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", id, name)
			}
			return nil
		},
	}
}
