package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coursekit/video-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "video-api",
	Short: "Course Video API server",
	Long: `Course Video API - a backend for embedding videos in course content

The API resolves video URLs to their hosting platform (YouTube, Brightcove,
Wistia, Vimeo or plain HTML5 files), fetches the platform's default
transcripts as WebVTT, accepts manual transcript uploads in common caption
formats and tracks per-student playback state.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it.
// Version and help output must work without a config file present.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
