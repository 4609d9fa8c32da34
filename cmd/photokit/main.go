package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/gemini-photo-kit/internal/config"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// cfg は PersistentPreRunE で読み込まれます。
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "photokit",
	Short: "Gemini を使った写真編集ツール",
	Long: `photokit は Gemini の画像生成モデルを使って写真を修復・加工するコマンドラインツールです。

Examples:
  photokit restore old.jpg
  photokit id-photo me.jpg --background "Light Blue" --count 3
  photokit product person.png bottle.png --scene "on a sunny beach"
  photokit remove-object street.jpg --target "the red car"
  photokit headshot me.jpg --background "Plain Wall"
  photokit serve --addr :8080`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(idPhotoCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(removeObjectCmd)
	rootCmd.AddCommand(headshotCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(serveCmd)

	rootCmd.PersistentFlags().StringP("output", "o", "", "出力ディレクトリ (既定: PHOTOKIT_OUTPUT_DIR)")
	rootCmd.PersistentFlags().String("model", "", "使用するモデル (既定: PHOTOKIT_MODEL)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "デバッグログを出力する")
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	if dir, _ := cmd.Flags().GetString("output"); dir != "" {
		cfg.OutputDir = dir
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.Model = model
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(newLogHandler(cmd.ErrOrStderr(), level, cfg.IsJSONLog())))
	return nil
}
