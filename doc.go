// Package taperuntime runs programs for a small tape machine: a fixed-size,
// wraparound byte tape driven by single-character instructions.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	taperuntime/         Root package with the Input and Output interfaces
//	├── engine/          Instruction dispatch, loop control, bracket checking
//	├── tape/            The byte tape and its cursor
//	├── source/          Program loading and comment stripping
//	├── console/         Line input and output over io.Reader / io.Writer
//	├── config/          TOML configuration
//	├── errors/          Structured error types for debugging
//	└── cmd/run/         Command line runner and interactive debugger
//
// # Quick Start
//
// Load and run a program:
//
//	program, err := source.Read("hello.bf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	eng, err := engine.New(program,
//	    engine.WithTapeSize(128),
//	    engine.WithInput(console.Stdin("> ")),
//	    engine.WithOutput(console.NewWriter(os.Stdout)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := eng.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Instructions
//
//	<  move the cursor left          >  move the cursor right
//	+  increment the current cell    -  decrement the current cell
//	,  read a number into the cell   .  write the cell
//	[  enter loop if cell != 0       ]  jump back to the matching [
//
// Every other character is ignored. Lines may carry comments that start
// with '#'.
//
// # Errors
//
// All errors are *errors.Error values carrying a Phase and Kind. Input
// faults from ',' leave the engine on the failing instruction, so callers can
// report them and call Run again to re-prompt.
package taperuntime
