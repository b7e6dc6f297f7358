package glot

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"glot/internal/backup"
	"glot/internal/catalog"
	"glot/internal/history"
	"glot/internal/language"
)

const (
	defaultTargetLang       = "en"
	defaultSourceLang       = "auto"
	defaultFormalKey        = "formal"
	defaultTranslatedSuffix = "_translated"
	defaultIgnoreFileName   = ".glotignore"
)

// runEnv bundles the per-run collaborators the dispatch branches share.
type runEnv struct {
	cfg          *Config
	settings     *Settings
	store        *history.Store
	logger       *slog.Logger
	modelID      string
	formalRecord string
}

func (e *Engine) execute(ctx context.Context, cfg *Config, settings *Settings, input string) (string, error) {
	logger := e.runLogger(cfg.Verbose())
	logger.Info("settings loaded", "history_limit", settings.HistoryLimit())

	whisperModel := resolveWhisperModel(cfg, settings)

	if cfg.ShowEnabledLanguages() || cfg.ShowEnabledStyles() {
		return renderLanguagesAndStyles(cfg.ShowEnabledLanguages(), cfg.ShowEnabledStyles(), settings), nil
	}
	if cfg.ShowModelsList() {
		return renderModelsList(cfg)
	}
	if cfg.ShowWhisperModels() {
		return renderWhisperModels(), nil
	}
	if cfg.ShowHistories() {
		store, err := e.openHistory()
		if err != nil {
			return "", wrapKind(ErrIO, err)
		}
		defer store.Close()
		return renderHistories(ctx, store)
	}

	dataPath, dataSet := cfg.Data()
	mimeHint, mimeSet := cfg.DataMIME()
	outPath, outSet := cfg.OutPath()
	trimmedInput := strings.TrimSpace(input)

	if mimeSet && !dataSet && trimmedInput == "" {
		return "", kindErrorf(ErrInvalidArgument, "--data-mime requires --data or stdin")
	}

	var isDir bool
	if dataSet {
		info, err := os.Stat(dataPath)
		if err != nil {
			return "", wrapKind(ErrIO, fmt.Errorf("failed to read --data path: %s: %w", dataPath, err))
		}
		isDir = info.IsDir()
	}

	if cfg.Overwrite() && !dataSet {
		return "", kindErrorf(ErrInvalidArgument, "--overwrite requires --data path")
	}
	if outSet && cfg.Overwrite() {
		return "", kindErrorf(ErrInvalidArgument, "--out cannot be used with --overwrite")
	}

	var attachment *Attachment
	switch {
	case dataSet && !isDir:
		att, err := loadAttachment(dataPath, mimeHint, cfg.ForceTranslation())
		if err != nil {
			return "", err
		}
		attachment = att
	case !dataSet && mimeSet && trimmedInput != "":
		att, err := attachmentFromBytes([]byte(input), mimeHint, "", cfg.ForceTranslation())
		if err != nil {
			return "", err
		}
		attachment = att
		trimmedInput = ""
	}

	if outSet && attachment == nil && !isDir {
		return "", kindErrorf(ErrInvalidArgument, "--out requires --data or stdin attachment")
	}
	if attachment == nil && !isDir && trimmedInput == "" {
		return "", kindErrorf(ErrInvalidArgument, "stdin is empty")
	}

	formalKey, formalSet := cfg.Formal()
	if !formalSet {
		formalKey = defaultFormalKey
	}
	formalKey = strings.TrimSpace(formalKey)
	if formalKey == "" {
		return "", kindErrorf(ErrInvalidArgument, "formality is empty")
	}
	formality := formalKey
	if value, ok := settings.Formal(formalKey); ok {
		formality = value
	}
	formalRecord := ""
	if formalSet {
		formalRecord = formalKey
	}

	threads := resolveThreads(cfg, settings)

	store, err := e.openHistory()
	var lastUsed string
	if err != nil {
		logger.Warn("history unavailable", "error", err)
		store = nil
	} else {
		defer store.Close()
		if model, lookupErr := store.LastUsedModel(ctx); lookupErr != nil {
			logger.Warn("read last used model", "error", lookupErr)
		} else {
			lastUsed = model
		}
	}

	keyOverride, _ := cfg.Key()
	selection, err := resolveSelection(cfg, lastUsed)
	if err != nil {
		return "", wrapKind(ErrInvalidArgument, err)
	}
	apiKey, err := catalog.ResolveKey(selection.Provider, keyOverride)
	if err != nil {
		return "", wrapKind(ErrInvalidArgument, fmt.Errorf("no API key found for selected provider: %w", err))
	}
	resolvedModel, err := catalog.ResolveModel(selection.Provider, selection.Model)
	if err != nil {
		return "", wrapKind(ErrInvalidArgument, err)
	}
	modelID := selection.Provider.String() + ":" + resolvedModel
	logger.Debug("model resolved", "model", modelID)

	targetLang := defaultTargetLang
	if v, ok := cfg.Lang(); ok {
		targetLang = v
	}
	sourceLang := defaultSourceLang
	if v, ok := cfg.SourceLang(); ok {
		sourceLang = v
	}
	if !language.IsValid(targetLang) {
		return "", kindErrorf(ErrInvalidArgument,
			"invalid target language code '%s' (expected ISO 639-1/2/3 code or zho-hans/zho-hant)", targetLang)
	}
	if !language.IsValidSource(sourceLang) {
		return "", kindErrorf(ErrInvalidArgument,
			"invalid source language code '%s' (expected ISO 639-1/2/3 code, zho-hans/zho-hant, or auto)", sourceLang)
	}

	if store != nil {
		if err := store.SetLastUsedModel(ctx, modelID); err != nil {
			logger.Warn("store last used model", "error", err)
		}
	}

	env := runEnv{
		cfg:          cfg,
		settings:     settings,
		store:        store,
		logger:       logger,
		modelID:      modelID,
		formalRecord: formalRecord,
	}
	req := Request{
		Task:             TaskTranslate,
		Text:             trimmedInput,
		TargetLang:       language.Normalize(targetLang),
		SourceLang:       language.Normalize(sourceLang),
		Formality:        formality,
		Slang:            cfg.Slang(),
		Styles:           settings.formalStyles(),
		SystemLanguages:  settings.systemLanguageList(),
		Provider:         selection.Provider.String(),
		Model:            resolvedModel,
		APIKey:           apiKey,
		WhisperModel:     whisperModel,
		OCRNormalize:     settings.OCRNormalize(),
		DebugOCR:         cfg.DebugOCR(),
		WithCommentout:   cfg.WithCommentout(),
		ForceTranslation: cfg.ForceTranslation(),
		TranslatedSuffix: resolveTranslatedSuffix(settings),
		IgnoreFile:       resolveIgnoreFile(settings),
		Threads:          threads,
		Overlay:          overlayStyle(settings),
	}

	switch {
	case cfg.Correction():
		if cfg.POS() {
			return "", kindErrorf(ErrInvalidArgument, "--correction cannot be used with --pos")
		}
		if attachment != nil || isDir {
			return "", kindErrorf(ErrInvalidArgument, "--correction only supports text input")
		}
		req.Task = TaskCorrection
		return e.runTextTask(ctx, env, req)
	case cfg.POS():
		if attachment != nil || isDir {
			return "", kindErrorf(ErrInvalidArgument, "--pos only supports text input")
		}
		req.Task = TaskPartOfSpeech
		return e.runTextTask(ctx, env, req)
	case isDir:
		return e.runDirectory(ctx, env, req, dataPath, outPath, outSet)
	case attachment != nil:
		return e.runAttachment(ctx, env, req, attachment, dataPath, outPath, outSet)
	default:
		return e.runTranslateText(ctx, env, req)
	}
}

// runTextTask handles correction and part-of-speech runs: cached, no
// history entry.
func (e *Engine) runTextTask(ctx context.Context, env runEnv, req Request) (string, error) {
	res, _, err := e.translateTextCached(ctx, req)
	if err != nil {
		return "", err
	}
	return formatRunOutput(res.Text, res, env.modelID, env.cfg.WithUsingModel(), env.cfg.WithUsingTokens()), nil
}

// runTranslateText handles plain text translation and records the run.
func (e *Engine) runTranslateText(ctx context.Context, env runEnv, req Request) (string, error) {
	res, hit, err := e.translateTextCached(ctx, req)
	if err != nil {
		return "", err
	}
	if hit {
		env.logger.Debug("translation served from cache")
	}
	e.recordHistory(ctx, env, history.Entry{
		Kind:       history.KindText,
		Model:      env.modelID,
		Formal:     env.formalRecord,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Source:     req.Text,
		Result:     res.Text,
	})
	return formatRunOutput(res.Text, res, env.modelID, env.cfg.WithUsingModel(), env.cfg.WithUsingTokens()), nil
}

// runDirectory delegates a directory tree to the collaborator and returns
// its summary.
func (e *Engine) runDirectory(ctx context.Context, env runEnv, req Request, dataPath, outPath string, outSet bool) (string, error) {
	if outSet {
		if info, err := os.Stat(outPath); err == nil && !info.IsDir() {
			return "", kindErrorf(ErrInvalidArgument, "--out must be a directory when --data is a directory")
		}
		if canonicalPath(outPath) == canonicalPath(dataPath) {
			return "", kindErrorf(ErrInvalidArgument,
				"--out must be different from the source directory (use --overwrite to write in place)")
		}
		req.OutDir = outPath
	}
	req.Task = TaskDirectory
	req.Text = ""
	req.DirPath = dataPath
	req.Overwrite = env.cfg.Overwrite()
	req.IgnorePatterns = ignorePatterns(env.cfg)
	env.logger.Info("directory run dispatched",
		"dir", dataPath, "threads", req.Threads, "ignore_patterns", len(req.IgnorePatterns))

	res, err := e.translate(ctx, req)
	if err != nil {
		return "", err
	}
	return formatRunOutput(res.Text, res, env.modelID, env.cfg.WithUsingModel(), env.cfg.WithUsingTokens()), nil
}

// runAttachment translates a data payload and writes the result to disk
// when the run asked for a file, recording where it went.
func (e *Engine) runAttachment(ctx context.Context, env runEnv, req Request, att *Attachment, srcPath, outPath string, outSet bool) (string, error) {
	prompt := fmt.Sprintf("Translate the attached file into %s.", req.TargetLang)
	if req.Text != "" {
		prompt += "\n\nAdditional instructions:\n" + req.Text
	}
	req.Text = prompt
	req.Attachment = att
	req.Overwrite = env.cfg.Overwrite()

	res, err := e.translate(ctx, req)
	if err != nil {
		return "", err
	}

	source := srcPath
	if source == "" {
		source = "stdin"
	}

	if len(res.Data) == 0 && !outSet && !env.cfg.Overwrite() {
		e.recordHistory(ctx, env, history.Entry{
			Kind:       history.KindAttachment,
			Model:      env.modelID,
			Formal:     env.formalRecord,
			MIME:       att.MIME,
			SourceLang: req.SourceLang,
			TargetLang: req.TargetLang,
			Source:     source,
			Result:     res.Text,
		})
		return formatRunOutput(res.Text, res, env.modelID, env.cfg.WithUsingModel(), env.cfg.WithUsingTokens()), nil
	}

	data := res.Data
	outputMIME := res.MIME
	if len(data) == 0 {
		data = []byte(res.Text)
		outputMIME = MIMEText
	} else if outputMIME == "" {
		outputMIME = att.MIME
	}

	var dest string
	switch {
	case env.cfg.Overwrite():
		root, rootErr := e.backupRoot()
		if rootErr != nil {
			return "", wrapKind(ErrIO, rootErr)
		}
		entry, backupErr := backup.NewStore(root).Backup(srcPath, int(env.settings.BackupTTLDays()))
		if backupErr != nil {
			return "", wrapKind(ErrIO, backupErr)
		}
		env.logger.Info("backup created", "src", srcPath, "backup", entry.Backup)
		dest = srcPath
	case outSet:
		dest, err = resolveOutPath(outPath, outputStem(srcPath, att.Name), outputMIME)
		if err != nil {
			return "", err
		}
	case srcPath != "":
		dest, err = translatedOutputPath(srcPath, req.TranslatedSuffix, outputMIME)
		if err != nil {
			return "", err
		}
	default:
		dir, dirErr := e.attachmentFallbackDir()
		if dirErr != nil {
			return "", wrapKind(ErrIO, dirErr)
		}
		ext, ok := extensionFromMIME(outputMIME)
		if !ok {
			return "", kindErrorf(ErrInvalidArgument, "unsupported output mime '%s'", outputMIME)
		}
		dest = filepath.Join(dir, outputStem("", att.Name)+req.TranslatedSuffix+"."+ext)
	}

	if err := writeFileCreatingParents(dest, data); err != nil {
		return "", wrapKind(ErrIO, err)
	}
	env.logger.Info("translated file written", "path", dest, "mime", outputMIME)

	e.recordHistory(ctx, env, history.Entry{
		Kind:       history.KindAttachment,
		Model:      env.modelID,
		Formal:     env.formalRecord,
		MIME:       att.MIME,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Source:     source,
		Result:     dest,
	})
	message := createdMessage(dest, outputMIME, len(data))
	return formatRunOutput(message, res, env.modelID, env.cfg.WithUsingModel(), env.cfg.WithUsingTokens()), nil
}

func (e *Engine) openHistory() (*history.Store, error) {
	path, err := e.historyDBPath()
	if err != nil {
		return nil, err
	}
	return history.Open(path)
}

func (e *Engine) recordHistory(ctx context.Context, env runEnv, entry history.Entry) {
	if env.store == nil || env.settings.HistoryLimit() <= 0 {
		return
	}
	if _, err := env.store.Record(ctx, entry, env.settings.HistoryLimit()); err != nil {
		env.logger.Warn("record history", "error", err)
	}
}

func (e *Engine) translate(ctx context.Context, req Request) (*Result, error) {
	translator := e.currentTranslator()
	if translator == nil {
		return nil, kindErrorf(ErrPipeline, "no translator registered")
	}
	res, err := translator.Translate(ctx, req)
	if err != nil {
		return nil, wrapKind(ErrPipeline, err)
	}
	if res == nil {
		return nil, kindErrorf(ErrPipeline, "translator returned no result")
	}
	return res, nil
}

// translateTextCached memoizes pure text tasks so repeated identical runs
// skip the collaborator.
func (e *Engine) translateTextCached(ctx context.Context, req Request) (*Result, bool, error) {
	key := textCacheKey(req)
	if cached, ok := e.cache.Get(key); ok {
		return cloneResult(cached), true, nil
	}
	res, err := e.translate(ctx, req)
	if err != nil {
		return nil, false, err
	}
	e.cache.Add(key, cloneResult(res))
	return res, false, nil
}

func textCacheKey(req Request) string {
	hash := sha256.New()
	write := func(parts ...string) {
		for _, part := range parts {
			hash.Write([]byte(part))
			hash.Write([]byte{0})
		}
	}
	write(string(req.Task), req.Text, req.TargetLang, req.SourceLang, req.Formality,
		strconv.FormatBool(req.Slang), strconv.FormatBool(req.WithCommentout),
		req.Provider, req.Model)
	keys := make([]string, 0, len(req.Styles))
	for key := range req.Styles {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		write(key, req.Styles[key])
	}
	write(req.SystemLanguages...)
	return hex.EncodeToString(hash.Sum(nil))
}

func cloneResult(res *Result) *Result {
	clone := *res
	if res.Usage != nil {
		usage := *res.Usage
		clone.Usage = &usage
	}
	if res.Data != nil {
		clone.Data = append([]byte(nil), res.Data...)
	}
	return &clone
}

func resolveSelection(cfg *Config, lastUsed string) (catalog.Selection, error) {
	keyOverride, _ := cfg.Key()
	if modelArg, ok := cfg.Model(); ok {
		if strings.TrimSpace(modelArg) == "" {
			return catalog.Selection{}, errors.New("model argument is empty")
		}
		return catalog.ResolveSelection(modelArg, keyOverride)
	}
	if lastUsed != "" {
		if selection, err := catalog.ResolveSelection(lastUsed, keyOverride); err == nil {
			return selection, nil
		}
	}
	return catalog.ResolveSelection("", keyOverride)
}

func resolveWhisperModel(cfg *Config, settings *Settings) string {
	if v, ok := cfg.WhisperModel(); ok {
		return v
	}
	if v, ok := settings.WhisperModel(); ok {
		return v
	}
	return ""
}

func resolveThreads(cfg *Config, settings *Settings) int {
	if v, ok := cfg.DirectoryTranslationThreads(); ok {
		return max(v, 1)
	}
	if v, ok := settings.DirectoryTranslationThreads(); ok {
		return max(v, 1)
	}
	return 1
}

func resolveTranslatedSuffix(settings *Settings) string {
	if v, ok := settings.TranslatedSuffix(); ok {
		return v
	}
	return defaultTranslatedSuffix
}

func resolveIgnoreFile(settings *Settings) string {
	if v, ok := settings.TranslationIgnoreFile(); ok {
		return v
	}
	return defaultIgnoreFileName
}

func ignorePatterns(cfg *Config) []string {
	count := cfg.IgnoreTranslationFileCount()
	patterns := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if pattern, ok := cfg.IgnoreTranslationFileAt(i); ok {
			patterns = append(patterns, pattern)
		}
	}
	return patterns
}

func overlayStyle(settings *Settings) OverlayStyle {
	var style OverlayStyle
	if v, ok := settings.OverlayTextColor(); ok {
		style.TextColor = v
	}
	if v, ok := settings.OverlayStrokeColor(); ok {
		style.StrokeColor = v
	}
	if v, ok := settings.OverlayFillColor(); ok {
		style.FillColor = v
	}
	if v, ok := settings.OverlayFontFamily(); ok {
		style.FontFamily = v
	}
	if v, ok := settings.OverlayFontPath(); ok {
		style.FontPath = v
	}
	if v, ok := settings.OverlayFontSize(); ok {
		style.FontSize = v
	}
	return style
}

func outputStem(srcPath, name string) string {
	base := name
	if srcPath != "" {
		base = filepath.Base(srcPath)
	}
	if base == "" {
		return "translated"
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return "translated"
	}
	return stem
}

func createdMessage(path, mime string, size int) string {
	kb := (size + 1023) / 1024
	switch {
	case strings.HasPrefix(mime, "image/"):
		return fmt.Sprintf("Created image %s (%dKB) !", path, kb)
	case strings.HasPrefix(mime, "audio/"):
		return fmt.Sprintf("Created audio %s (%dKB) !", path, kb)
	default:
		return fmt.Sprintf("Created file %s (%dKB) !", path, kb)
	}
}

func formatRunOutput(text string, res *Result, modelID string, withModel, withTokens bool) string {
	var meta []string
	if withModel {
		name := res.Model
		if name == "" {
			name = modelID
		}
		if name == "" {
			name = "unavailable"
		}
		meta = append(meta, "model: "+name)
	}
	if withTokens {
		meta = append(meta, tokensLine(res.Usage))
	}
	if len(meta) == 0 {
		return text
	}
	return text + "\n" + strings.Join(meta, "\n")
}

func tokensLine(usage *Usage) string {
	if usage == nil {
		return "tokens: unavailable"
	}
	parts := make([]string, 0, 3)
	if usage.PromptTokens > 0 {
		parts = append(parts, fmt.Sprintf("prompt=%d", usage.PromptTokens))
	}
	if usage.CompletionTokens > 0 {
		parts = append(parts, fmt.Sprintf("completion=%d", usage.CompletionTokens))
	}
	if usage.TotalTokens > 0 {
		parts = append(parts, fmt.Sprintf("total=%d", usage.TotalTokens))
	}
	if len(parts) == 0 {
		return "tokens: unavailable"
	}
	return "tokens: " + strings.Join(parts, ", ")
}
