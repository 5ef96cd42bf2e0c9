package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "isocity",
		Short: "Isometric city infrastructure-topology toolkit",
	}

	rootCmd.AddCommand(coverageCmd())
	rootCmd.AddCommand(bridgeCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func coverageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coverage [save-path]",
		Short: "Compute service coverage fields for a saved city",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCoverage(args[0])
		},
	}
}

func bridgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bridge [save-path] [x1,y1] [x2,y2]",
		Short: "Detect and classify a bridge span along a straight path",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return runBridge(args[0], args[1], args[2])
		},
	}
}

func renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [save-path] [out-dir]",
		Short: "Render coverage fields as PNG heatmaps",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRender(args[0], args[1])
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [save-path]",
		Short: "Upgrade a save file in place, grandfathering legacy service buildings",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runMigrate(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [save-path]",
		Short: "Start the local dev server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			savePath := ""
			if len(args) > 0 {
				savePath = args[0]
			}
			return runServe(savePath, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP server port (overrides ISOCITY_PORT)")
	return cmd
}
