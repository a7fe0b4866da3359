package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	typeenc "github.com/appsworld/go-typeenc"
)

var (
	showCType bool
	dumpTree  bool
)

var rootCmd = &cobra.Command{
	Use:           "typeenc",
	Short:         "Decode Objective-C type encodings",
	Long:          "typeenc parses Objective-C type encodings, method type strings, and property attribute lists, and prints them back exactly or as readable C declarations.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var typeCmd = &cobra.Command{
	Use:   "type <encoding>",
	Short: "Parse a single type encoding",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := typeenc.ParseType(args[0])
		if err != nil {
			return err
		}
		if dumpTree {
			spew.Fdump(cmd.OutOrStdout(), t)
		}
		if showCType {
			fmt.Fprintln(cmd.OutOrStdout(), t.CType())
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Encode())
		return nil
	},
}

var methodCmd = &cobra.Command{
	Use:   "method <encoding>",
	Short: "Parse a method type string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := typeenc.ParseMethodTypes(args[0])
		if err != nil {
			return err
		}
		if dumpTree {
			spew.Fdump(cmd.OutOrStdout(), m)
		}
		if showCType {
			for _, t := range m.Types {
				fmt.Fprintln(cmd.OutOrStdout(), t.CType())
			}
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), m.Encode())
		return nil
	},
}

var attrsCmd = &cobra.Command{
	Use:   "attrs <attribute-string>",
	Short: "Parse a property attribute string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := typeenc.ParseAttributes(args[0])
		if dumpTree {
			spew.Fdump(cmd.OutOrStdout(), a)
		}
		if showCType {
			fmt.Fprintln(cmd.OutOrStdout(), a.Summary())
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Encode())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&showCType, "ctype", false, "print a readable C declaration instead of the encoding")
	rootCmd.PersistentFlags().BoolVar(&dumpTree, "dump", false, "dump the parsed tree")
	rootCmd.AddCommand(typeCmd, methodCmd, attrsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
