package cli

import (
	"fmt"
	"runtime"

	"github.com/ariel-frischer/gitmsg/internal/build"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var versionPlain bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if versionPlain {
			fmt.Fprintln(out, build.Version)
			return
		}

		bold := color.New(color.Bold).SprintFunc()
		dim := color.New(color.Faint).SprintFunc()
		fmt.Fprintf(out, "%s %s\n", bold("gitmsg"), build.Version)
		fmt.Fprintf(out, "%s %s\n", dim("commit:"), build.Commit)
		fmt.Fprintf(out, "%s %s\n", dim("built:"), build.BuildDate)
		fmt.Fprintf(out, "%s %s %s/%s\n", dim("go:"), runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionPlain, "plain", false, "plain output (for scripts)")
	rootCmd.AddCommand(versionCmd)
}
