package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"glot"
)

// runOptions holds the raw flag values for the root command. Only flags the
// user actually set are copied onto the Config, so the engine can tell unset
// options from explicit empty ones.
type runOptions struct {
	lang         string
	sourceLang   string
	model        string
	key          string
	formal       string
	data         string
	dataMIME     string
	outPath      string
	settingsPath string
	whisperModel string

	slang             bool
	overwrite         bool
	force             bool
	pos               bool
	correction        bool
	withCommentout    bool
	withUsingModel    bool
	withUsingTokens   bool
	showLanguages     bool
	showStyles        bool
	showModels        bool
	showWhisperModels bool
	showHistories     bool
	debugOCR          bool
	verbose           bool

	threads int
	ignores []string
}

func newRootCommand() *cobra.Command {
	opts := &runOptions{}

	rootCmd := &cobra.Command{
		Use:   "glot [text...]",
		Short: "Translate text, documents, and media",
		Long: `Glot translates text from stdin or arguments, single files, and whole
directory trees. Model and credentials are resolved from flags, the settings
file layers, and the environment.

Examples:
  echo "Bonjour" | glot -l en
  glot -l ja "Good morning"
  glot -l de -d report.docx
  glot -l fr -d ./docs -o ./docs_fr --threads 4`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if strings.TrimSpace(input) == "" && !hasRunWork(cmd) {
				return cmd.Help()
			}
			out, err := glot.Run(cmd.Context(), opts.config(cmd), input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.lang, "lang", "l", "", "Target language code")
	flags.StringVarP(&opts.sourceLang, "source-lang", "L", "", "Source language code (default: auto)")
	flags.StringVarP(&opts.model, "model", "m", "", "Model identifier (provider:model or bare provider)")
	flags.StringVarP(&opts.key, "key", "k", "", "API key override")
	flags.StringVarP(&opts.formal, "formal", "f", "", "Formality level")
	flags.BoolVarP(&opts.slang, "slang", "s", false, "Allow slang in the translation")
	flags.StringVarP(&opts.data, "data", "d", "", "File or directory to translate")
	flags.StringVarP(&opts.dataMIME, "data-mime", "M", "", "MIME type of the data payload")
	flags.StringVarP(&opts.outPath, "out", "o", "", "Output file or directory")
	flags.BoolVar(&opts.overwrite, "overwrite", false, "Rewrite the data file in place (a backup is kept)")
	flags.BoolVar(&opts.force, "force", false, "Force translation even when the payload looks untranslatable")
	flags.IntVar(&opts.threads, "threads", 0, "Worker threads for directory translation")
	flags.StringArrayVar(&opts.ignores, "ignore", nil, "Glob pattern to skip during directory translation (repeatable)")
	flags.BoolVar(&opts.pos, "pos", false, "Annotate part of speech instead of translating")
	flags.BoolVar(&opts.correction, "correction", false, "Correct the text instead of translating")
	flags.BoolVar(&opts.withCommentout, "with-commentout", false, "Translate commented-out regions too")
	flags.BoolVar(&opts.withUsingModel, "with-using-model", false, "Append the model used to the output")
	flags.BoolVar(&opts.withUsingTokens, "with-using-tokens", false, "Append token usage to the output")
	flags.BoolVar(&opts.showLanguages, "show-languages", false, "List the configured system languages")
	flags.BoolVar(&opts.showStyles, "show-styles", false, "List the configured formality styles")
	flags.BoolVar(&opts.showModels, "show-models", false, "List available models")
	flags.BoolVar(&opts.showWhisperModels, "show-whisper-models", false, "List supported whisper models")
	flags.BoolVar(&opts.showHistories, "show-histories", false, "List recent translation history")
	flags.StringVar(&opts.whisperModel, "whisper-model", "", "Whisper model for audio transcription")
	flags.StringVarP(&opts.settingsPath, "read-settings", "r", "", "Explicit settings file path")
	flags.BoolVar(&opts.debugOCR, "debug-ocr", false, "Keep intermediate OCR artifacts for debugging")
	flags.BoolVar(&opts.verbose, "verbose", false, "Verbose logging")

	rootCmd.AddCommand(newSettingsCommand())
	rootCmd.AddCommand(newHistoryCommand())

	return rootCmd
}

// config copies set flags onto a fresh Config. String flags go through
// Changed so an explicit empty value stays distinguishable from an unset one.
func (o *runOptions) config(cmd *cobra.Command) *glot.Config {
	cfg := glot.NewConfig()
	flags := cmd.Flags()

	if flags.Changed("lang") {
		cfg.SetLang(o.lang)
	}
	if flags.Changed("source-lang") {
		cfg.SetSourceLang(o.sourceLang)
	}
	if flags.Changed("model") {
		cfg.SetModel(o.model)
	}
	if flags.Changed("key") {
		cfg.SetKey(o.key)
	}
	if flags.Changed("formal") {
		cfg.SetFormal(o.formal)
	}
	if flags.Changed("data") {
		cfg.SetData(o.data)
	}
	if flags.Changed("data-mime") {
		cfg.SetDataMIME(o.dataMIME)
	}
	if flags.Changed("out") {
		cfg.SetOutPath(o.outPath)
	}
	if flags.Changed("read-settings") {
		cfg.SetSettingsPath(o.settingsPath)
	}
	if flags.Changed("whisper-model") {
		cfg.SetWhisperModel(o.whisperModel)
	}
	if flags.Changed("threads") {
		cfg.SetDirectoryTranslationThreads(o.threads)
	}
	for _, pattern := range o.ignores {
		cfg.AddIgnoreTranslationFile(pattern)
	}

	cfg.SetSlang(o.slang)
	cfg.SetOverwrite(o.overwrite)
	cfg.SetForceTranslation(o.force)
	cfg.SetPOS(o.pos)
	cfg.SetCorrection(o.correction)
	cfg.SetWithCommentout(o.withCommentout)
	cfg.SetWithUsingModel(o.withUsingModel)
	cfg.SetWithUsingTokens(o.withUsingTokens)
	cfg.SetShowEnabledLanguages(o.showLanguages)
	cfg.SetShowEnabledStyles(o.showStyles)
	cfg.SetShowModelsList(o.showModels)
	cfg.SetShowWhisperModels(o.showWhisperModels)
	cfg.SetShowHistories(o.showHistories)
	cfg.SetDebugOCR(o.debugOCR)
	cfg.SetVerbose(o.verbose)

	return cfg
}

// readInput joins the positional arguments, or drains stdin when it is piped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	in := cmd.InOrStdin()
	if file, ok := in.(*os.File); ok {
		fd := file.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return "", nil
		}
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// hasRunWork reports whether the flags describe a run that makes sense
// without input text.
func hasRunWork(cmd *cobra.Command) bool {
	flags := cmd.Flags()
	for _, name := range []string{
		"data", "data-mime",
		"show-languages", "show-styles", "show-models", "show-whisper-models", "show-histories",
	} {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}
