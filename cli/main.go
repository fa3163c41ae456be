package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sksp-lang/sscript/runtime/fault"
	"github.com/sksp-lang/sscript/runtime/interp"
)

func main() {
	var (
		verbose  int
		mathLib  bool
		stackLib bool
		debug    bool
	)

	rootCmd := &cobra.Command{
		Use:           "sscript [flags] [FILE]",
		Short:         "Interactive shell for the sscript stack language",
		Long:          "sscript starts an interactive shell for the concatenative stack language.\nAn optional FILE is loaded before the shell starts.",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
			cfg := loadShellConfig()
			if !cmd.Flags().Changed("verbose") && cfg.Verbose > 0 {
				verbose = cfg.Verbose
			}

			ip := interp.New()
			st := interp.NewState()

			preload := append([]string{}, cfg.Preload...)
			if mathLib {
				preload = append(preload, "math.sksp")
			}
			if stackLib {
				preload = append(preload, "stackop.sksp")
			}
			preload = append(preload, args...)
			for _, path := range preload {
				if err := ip.LoadFile(st, path); err != nil {
					return err
				}
			}

			return repl(ip, st, verbose, debug)
		},
	}

	rootCmd.Flags().IntVarP(&verbose, "verbose", "v", 0, "print the top N stack values after every input")
	rootCmd.Flags().Lookup("verbose").NoOptDefVal = "1"
	rootCmd.Flags().BoolVarP(&mathLib, "math", "m", false, "load the math library before the shell starts")
	rootCmd.Flags().BoolVarP(&stackLib, "stackop", "s", false, "load the stack operations library before the shell starts")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug output")

	if err := rootCmd.Execute(); err != nil {
		if f, ok := err.(*fault.Error); ok {
			fmt.Fprintln(os.Stderr, f.Render())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
