// Command argyle-debug prints how both parsing engines see the command line
// it was invoked with, for ad-hoc inspection. Keys are highlighted; pass
// anything you like after the program name, including an end-of-options "--"
// section.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Blobfolio/argyle"
	"github.com/Blobfolio/argyle/stream"
	"github.com/fatih/color"
)

var (
	heading = color.New(color.FgYellow, color.Bold)
	keyText = color.New(color.FgCyan)
	rawText = color.New(color.Faint)
)

func main() {
	if err := run(); err != nil {
		var e *argyle.Error
		if errors.As(err, &e) {
			if msg := e.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(e.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	args, err := argyle.New(0)
	if err != nil {
		return err
	}

	heading.Println("eager entries")
	for i, entry := range args.Take() {
		kind, _ := argyle.Classify(entry)
		if kind != argyle.KeyNone {
			fmt.Printf("  %2d  %s\n", i, keyText.Sprint(string(entry)))
		} else {
			fmt.Printf("  %2d  %q\n", i, string(entry))
		}
	}

	kw := stream.NewKeyWords()
	if err := kw.AddKeys("-h", "--help", "-V", "--version"); err != nil {
		return err
	}

	heading.Println("streaming view")
	src := stream.Args(kw)
	for {
		arg, ok := src.Next()
		if !ok {
			break
		}
		switch arg.Kind {
		case stream.ArgCommand:
			fmt.Printf("  command  %s\n", keyText.Sprint(arg.Name))
		case stream.ArgKey:
			fmt.Printf("  key      %s\n", keyText.Sprint(arg.Name))
		case stream.ArgKeyWithValue:
			fmt.Printf("  option   %s = %q\n", keyText.Sprint(arg.Name), arg.Value)
		case stream.ArgInvalidUTF8:
			fmt.Printf("  invalid  %s\n", rawText.Sprintf("%q", arg.Raw))
		case stream.ArgEnd:
			fmt.Printf("  end      %q\n", arg.Rest)
		default:
			fmt.Printf("  other    %q\n", arg.Raw)
		}
	}
	return nil
}
