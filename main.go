package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"aligner/config"
	"aligner/internal/fsutil"
	"aligner/internal/textutil"
	"aligner/jobconf"
	"aligner/models"
	"aligner/report"
	"aligner/subtitle"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:           "aligner",
		Short:         "aligner parses job configurations and renders subtitle tracks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadToolConfig(configPath)
			if err != nil {
				return err
			}
			// Flags set explicitly on the command line win over the file.
			if !cmd.Flags().Changed("format") {
				cfg.Format = loaded.Format
			}
			if !cmd.Flags().Changed("output-dir") {
				cfg.OutputDir = loaded.OutputDir
			}
			if !cmd.Flags().Changed("temp-dir") {
				cfg.TempDir = loaded.TempDir
			}
			if !cmd.Flags().Changed("strict") {
				cfg.StrictMode = loaded.StrictMode
			}
			if !cmd.Flags().Changed("verbose") {
				cfg.Verbose = loaded.Verbose
			}
			if !cmd.Flags().Changed("dry-run") {
				cfg.DryRun = loaded.DryRun
			}
			cfg.Input = loaded.Input
			// A positional FILE overrides the configured input.
			if len(args) > 0 {
				cfg.Input = args[0]
			}
			if cfg.Verbose {
				log.SetLevel(log.DebugLevel)
			}
			return cfg.Validate()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: search standard locations)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Format, "format", "f", cfg.Format, "Output subtitle format: srt, vtt")
	rootCmd.PersistentFlags().StringVarP(&cfg.OutputDir, "output-dir", "o", cfg.OutputDir, "Directory for rendered output")
	rootCmd.PersistentFlags().StringVar(&cfg.TempDir, "temp-dir", cfg.TempDir, "Directory for scratch files (default: platform temp dir)")
	rootCmd.PersistentFlags().BoolVar(&cfg.StrictMode, "strict", cfg.StrictMode, "Fail when the job config produced warnings")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Show detailed logs")
	rootCmd.PersistentFlags().BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "Parse and validate without writing output")

	rootCmd.AddCommand(newInspectCmd(cfg))
	rootCmd.AddCommand(newRenderCmd(cfg))
	return rootCmd
}

// loadToolConfig loads the tool configuration: the given file, or the
// first one found in the standard locations, or defaults.
func loadToolConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.FindConfigFile()
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	return cfg, nil
}

// newInspectCmd parses a job configuration source (TXT or XML) and
// prints the job mapping and its tasks.
func newInspectCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [FILE]",
		Short: "Parse a job configuration and print its contents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, rep, err := parseJobSource(cfg.Input)
			if err != nil {
				return err
			}
			for _, w := range rep.Warnings {
				log.Warn(w)
			}
			for _, e := range rep.Errors {
				log.Error(e)
			}
			if !rep.Ok() {
				return fmt.Errorf("failed to parse job config %s", cfg.Input)
			}
			if cfg.StrictMode && len(rep.Warnings) > 0 {
				return fmt.Errorf("job config %s produced %d warnings", cfg.Input, len(rep.Warnings))
			}

			codec := jobconf.Default()
			fmt.Println(job)
			fmt.Println(codec.StringFromMapping(job.Config))
			for i, task := range job.Tasks {
				fmt.Printf("  task %d: %s\n", i, codec.StringFromMapping(task.Config))
			}

			if err := job.Validate(); err != nil {
				log.Warnf("job does not validate: %v", err)
			}
			return nil
		},
	}
}

// parseJobSource reads path and builds the job model from it. XML
// sources carry both the job and its tasks; line-oriented sources carry
// only the job mapping.
func parseJobSource(path string) (*models.Job, *report.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read job config: %w", err)
	}
	data = textutil.RemoveBOM(data)

	codec := jobconf.Default()
	rep := report.New()

	if strings.EqualFold(filepath.Ext(path), ".xml") {
		jobCfg := codec.MappingFromXMLJob(data, rep)
		taskCfgs := codec.MappingsFromXMLTasks(data, rep)
		return models.NewJobFromMappings(jobCfg, taskCfgs), rep, nil
	}

	s := codec.StringFromText(string(data))
	log.Debugf("config string: %s", s)
	jobCfg := codec.MappingFromString(s, rep)
	return models.NewJobFromMappings(jobCfg, nil), rep, nil
}

// fragment is one aligned text interval in a fragments YAML file.
type fragment struct {
	Begin float64 `yaml:"begin"`
	End   float64 `yaml:"end"`
	Text  string  `yaml:"text"`
}

// newRenderCmd reads a fragments YAML file and writes a subtitle track.
func newRenderCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "render [FILE]",
		Short: "Render an aligned fragments file as a subtitle track",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(cfg.Input)
			if err != nil {
				return fmt.Errorf("failed to read fragments file: %w", err)
			}

			var fragments []fragment
			if err := yaml.Unmarshal(textutil.RemoveBOM(data), &fragments); err != nil {
				return fmt.Errorf("failed to parse fragments file: %w", err)
			}

			track := make(subtitle.Track, 0, len(fragments))
			for i, f := range fragments {
				track = append(track, subtitle.Entry{
					Index: i + 1,
					Begin: f.Begin,
					End:   f.End,
					Text:  f.Text,
				})
			}
			if err := track.Validate(); err != nil {
				return err
			}

			name := fsutil.FileNameWithoutExtension(cfg.Input) + "." + cfg.Format
			outPath := fsutil.NormJoin(cfg.OutputDir, name)

			if cfg.DryRun {
				log.Infof("dry run: would write %d entries to %s", len(track), outPath)
				return nil
			}

			// Write to a scratch file first so a failed render never
			// leaves a truncated track at the output path.
			tempDir := cfg.TempDir
			if tempDir == "" {
				tempDir = fsutil.TempDir()
			}
			scratch := fsutil.NormJoin(tempDir, name)
			if err := writeTrackFile(scratch, track, subtitle.Format(cfg.Format)); err != nil {
				return err
			}
			if err := fsutil.CopyTree(scratch, outPath); err != nil {
				return fmt.Errorf("failed to publish output file: %w", err)
			}
			if err := os.Remove(scratch); err != nil {
				log.Warnf("failed to remove scratch file %s: %v", scratch, err)
			}

			log.Infof("wrote %d entries to %s", len(track), outPath)
			return nil
		},
	}
}

func writeTrackFile(path string, track subtitle.Track, format subtitle.Format) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	return subtitle.Write(out, track, format)
}
