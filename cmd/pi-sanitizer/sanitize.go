package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MacAttak/pi-sanitizer/internal/appconfig"
	"github.com/MacAttak/pi-sanitizer/internal/aupack"
	"github.com/MacAttak/pi-sanitizer/internal/ner"
	"github.com/MacAttak/pi-sanitizer/internal/obs"
	"github.com/MacAttak/pi-sanitizer/internal/secretpack"
	"github.com/MacAttak/pi-sanitizer/pkg/pattern"
	"github.com/MacAttak/pi-sanitizer/pkg/pipeline"
	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

func newSanitizeCmd() *cobra.Command {
	var (
		inputPath        string
		mapOutPath       string
		formatStr        string
		configPath       string
		enableNER        bool
		patternPackFiles []string
	)

	cmd := &cobra.Command{
		Use:   "sanitize",
		Short: "Mask personally identifiable information in content",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readInput(cmd, inputPath)
			if err != nil {
				return err
			}

			appCfg, err := appconfig.Load(configPath)
			if err != nil {
				return err
			}
			appCfg.SanitizeDefaults.PatternPackFiles = append(appCfg.SanitizeDefaults.PatternPackFiles, patternPackFiles...)

			logger, err := obs.New(appCfg.Logging)
			if err != nil {
				return err
			}

			sanitizeCfg := appCfg.ToSanitizeConfig()
			if enableNER {
				sanitizeCfg.EnableNER = true
			}

			p, err := buildPipeline(sanitizeCfg, appCfg, logger)
			if err != nil {
				return err
			}

			logger.Info("sanitizing content", "format", formatStr, "input_bytes", len(content))

			result, err := p.Sanitize(content, sanitize.Format(formatStr))
			if err != nil {
				logger.Error("sanitize failed", "error", err)
				return err
			}

			logger.Info("sanitize complete", "entities_masked", len(result.Map))

			fmt.Fprintln(cmd.OutOrStdout(), result.Sanitized)

			if mapOutPath != "" {
				encoded, err := json.MarshalIndent(result.Map, "", "  ")
				if err != nil {
					return err
				}
				if err := os.WriteFile(mapOutPath, encoded, 0o600); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to input file (default: stdin)")
	cmd.Flags().StringVar(&mapOutPath, "map-out", "", "path to write the rehydration map as JSON")
	cmd.Flags().StringVar(&formatStr, "format", "text", "one of text, json, html")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().BoolVar(&enableNER, "enable-ner", false, "enable the NER detector")
	cmd.Flags().StringArrayVar(&patternPackFiles, "pattern-pack-file", nil, "path to a YAML pattern-pack file (repeatable)")

	return cmd
}

func newRehydrateCmd() *cobra.Command {
	var (
		inputPath  string
		mapPath    string
		formatStr  string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "rehydrate",
		Short: "Restore original content from masked text and a rehydration map",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readInput(cmd, inputPath)
			if err != nil {
				return err
			}

			mapBytes, err := os.ReadFile(mapPath)
			if err != nil {
				return err
			}
			var rehydrationMap sanitize.RehydrationMap
			if err := json.Unmarshal(mapBytes, &rehydrationMap); err != nil {
				return err
			}

			appCfg, err := appconfig.Load(configPath)
			if err != nil {
				return err
			}

			logger, err := obs.New(appCfg.Logging)
			if err != nil {
				return err
			}

			p, err := buildPipeline(appCfg.ToSanitizeConfig(), appCfg, logger)
			if err != nil {
				return err
			}

			logger.Info("rehydrating content", "format", formatStr, "map_entries", len(rehydrationMap))

			restored, err := p.Rehydrate(content, rehydrationMap, sanitize.Format(formatStr))
			if err != nil {
				logger.Error("rehydrate failed", "error", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), restored)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to masked input file (default: stdin)")
	cmd.Flags().StringVar(&mapPath, "map", "", "path to the rehydration map JSON file (required)")
	cmd.Flags().StringVar(&formatStr, "format", "text", "one of text, json, html")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.MarkFlagRequired("map")

	return cmd
}

func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

// buildPipeline assembles pattern packs named in the config's
// pattern_packs list (plus any external §6.3 pattern-pack files) and
// wires the lazily-initialized NER adapter only when EnableNER is set,
// keeping model loading off the hot path for regex-only callers
// (§5 Lifecycles).
func buildPipeline(cfg sanitize.Config, appCfg appconfig.Config, logger *slog.Logger) (*pipeline.Pipeline, error) {
	var packs [][]pattern.Pattern
	for _, name := range cfg.PatternPacks {
		switch name {
		case "au":
			logger.Debug("loading pattern pack", "pack", "au")
			packs = append(packs, aupack.Patterns())
		case "secrets":
			logger.Debug("loading pattern pack", "pack", "secrets")
			pack, err := secretpack.Load()
			if err != nil {
				return nil, err
			}
			packs = append(packs, pack)
		default:
			logger.Warn("unknown pattern pack name, skipping", "pack", name)
		}
	}

	for _, file := range appCfg.SanitizeDefaults.PatternPackFiles {
		logger.Debug("loading pattern pack file", "path", file)
		pack, err := pattern.LoadPackFile(file)
		if err != nil {
			return nil, err
		}
		packs = append(packs, pack)
	}

	var tagger *ner.Adapter
	if cfg.EnableNER {
		logger.Info("NER enabled, wiring lazy ONNX adapter", "model_path", appCfg.NER.ModelPath)
		tagger = ner.NewAdapter(ner.Config{
			ModelPath:      appCfg.NER.ModelPath,
			TokenizerModel: appCfg.NER.TokenizerModel,
		})
	}

	if tagger == nil {
		return pipeline.New(cfg, nil, packs...)
	}
	return pipeline.New(cfg, tagger, packs...)
}
