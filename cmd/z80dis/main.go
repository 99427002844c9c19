// Command z80dis runs the decode package against a ROM image and prints
// the (pc, mnemonic, ir) records it produces, plus why the block
// stopped. It exists for eyeballing decoder output while wiring a new
// opcode.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/atoorisol/jssms/decode"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "z80dis",
		Short: "Decode a Z80 ROM image into IR and print the result",
	}

	var start string
	var limit int
	var showIR bool

	blockCmd := &cobra.Command{
		Use:   "block <rom>",
		Short: "Decode one block starting at an address and print each instruction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			pc, err := parseAddr(start)
			if err != nil {
				return fmt.Errorf("parsing -start: %w", err)
			}

			result := decode.Block(rom, pc)
			printBlock(cmd, result, limit, showIR)
			return nil
		},
	}
	blockCmd.Flags().StringVar(&start, "start", "0x0000", "start address (decimal or 0x-prefixed hex)")
	blockCmd.Flags().IntVar(&limit, "limit", 0, "stop after this many instructions (0 = no limit)")
	blockCmd.Flags().BoolVar(&showIR, "ir", false, "print each instruction's IR nodes")

	var walkLimit int
	walkCmd := &cobra.Command{
		Use:   "walk <rom>",
		Short: "Decode successive blocks, resuming after each ret/jp/halt, until the ROM is exhausted or a block is undecodable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			pc, err := parseAddr(start)
			if err != nil {
				return fmt.Errorf("parsing -start: %w", err)
			}

			blocks := 0
			for int(pc) < len(rom) {
				if walkLimit > 0 && blocks >= walkLimit {
					fmt.Fprintf(cmd.OutOrStdout(), "... stopped after %d blocks\n", walkLimit)
					break
				}
				result := decode.Block(rom, pc)
				fmt.Fprintf(cmd.OutOrStdout(), "-- block at 0x%04X --\n", pc)
				printBlock(cmd, result, 0, showIR)
				blocks++

				if result.TerminatedBy == decode.TerminatedUndecodable {
					break
				}
				pc = result.EndPC
			}
			return nil
		},
	}
	walkCmd.Flags().StringVar(&start, "start", "0x0000", "start address (decimal or 0x-prefixed hex)")
	walkCmd.Flags().IntVar(&walkLimit, "max-blocks", 0, "stop after this many blocks (0 = no limit)")
	walkCmd.Flags().BoolVar(&showIR, "ir", false, "print each instruction's IR nodes")

	rootCmd.AddCommand(blockCmd, walkCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "z80dis: %v\n", err)
		os.Exit(1)
	}
}

func parseAddr(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func printBlock(cmd *cobra.Command, result decode.Result, limit int, showIR bool) {
	out := cmd.OutOrStdout()
	for i, instr := range result.Instructions {
		if limit > 0 && i >= limit {
			fmt.Fprintf(out, "... stopped after %d instructions\n", limit)
			break
		}
		fmt.Fprintf(out, "0x%04X  %s\n", instr.PC, instr.Name)
		if showIR {
			for _, node := range instr.IR {
				fmt.Fprintf(out, "         %s\n", renderNode(node))
			}
		}
	}

	switch result.TerminatedBy {
	case decode.TerminatedUndecodable:
		fmt.Fprintf(out, "stopped at 0x%04X: %v\n", result.EndPC, result.Fault)
	default:
		fmt.Fprintf(out, "stopped at 0x%04X: %s\n", result.EndPC, result.TerminatedBy)
	}
}
