package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-photo-kit/internal/output"
	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/generator"

	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <image>",
	Short: "古い写真を修復・カラー化する",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

var idPhotoCmd = &cobra.Command{
	Use:   "id-photo <image>",
	Short: "証明写真を生成する",
	Args:  cobra.ExactArgs(1),
	RunE:  runIDPhoto,
}

var productCmd = &cobra.Command{
	Use:   "product <subject-image> <product-image>",
	Short: "人物と商品を新しいシーンに合成する",
	Args:  cobra.ExactArgs(2),
	RunE:  runProduct,
}

var removeObjectCmd = &cobra.Command{
	Use:   "remove-object <image>",
	Short: "画像から指定した物体を消去する",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoveObject,
}

var headshotCmd = &cobra.Command{
	Use:   "headshot <image>",
	Short: "ビジネス用のヘッドショットを生成する",
	Args:  cobra.ExactArgs(1),
	RunE:  runHeadshot,
}

func init() {
	restoreCmd.Flags().Bool("fix-damage", true, "傷や破れ、汚れを修復する")
	restoreCmd.Flags().Bool("enhance-colors", true, "色を補正する (白黒写真はカラー化する)")
	restoreCmd.Flags().Bool("sharpen-details", true, "細部を鮮明にする")

	idPhotoCmd.Flags().String("size", string(domain.IDPhotoSize3x4), "写真サイズ")
	idPhotoCmd.Flags().String("background", string(domain.IDBackgroundWhite), "背景色")
	idPhotoCmd.Flags().String("aspect-ratio", string(domain.FramePortrait), "アスペクト比 (Portrait, Square, Landscape)")
	idPhotoCmd.Flags().IntP("count", "n", 1, "生成する枚数")

	productCmd.Flags().String("scene", "", "合成するシーンの説明")
	productCmd.Flags().String("aspect-ratio", string(domain.ProductSquare), "アスペクト比 (9:16, 1:1, 16:9)")
	productCmd.Flags().IntP("count", "n", 1, "生成する枚数")
	_ = productCmd.MarkFlagRequired("scene")

	removeObjectCmd.Flags().String("target", "", "消去する物体の説明")
	_ = removeObjectCmd.MarkFlagRequired("target")

	headshotCmd.Flags().String("background", string(domain.HeadshotModernOffice), "背景")
	headshotCmd.Flags().String("aspect-ratio", string(domain.FramePortrait), "アスペクト比 (Portrait, Square, Landscape)")
	headshotCmd.Flags().IntP("count", "n", 1, "生成する枚数")
}

func runRestore(cmd *cobra.Command, args []string) error {
	opts := domain.DefaultRestoration(domain.ImageResource{})
	opts.FixDamage, _ = cmd.Flags().GetBool("fix-damage")
	opts.EnhanceColors, _ = cmd.Flags().GetBool("enhance-colors")
	opts.SharpenDetails, _ = cmd.Flags().GetBool("sharpen-details")

	return runTool(cmd, args, func(ctx context.Context, gen generator.PhotoGenerator, images []domain.ImageResource) ([]domain.ImageResource, error) {
		opts.Image = images[0]
		out, err := gen.RestorePhoto(ctx, opts)
		return []domain.ImageResource{out}, err
	})
}

func runIDPhoto(cmd *cobra.Command, args []string) error {
	opts := domain.DefaultIDPhoto(domain.ImageResource{})
	size, _ := cmd.Flags().GetString("size")
	background, _ := cmd.Flags().GetString("background")
	ratio, _ := cmd.Flags().GetString("aspect-ratio")
	opts.Size = domain.IDPhotoSize(size)
	opts.Background = domain.IDPhotoBackground(background)
	opts.AspectRatio = domain.FrameRatio(ratio)
	opts.Count, _ = cmd.Flags().GetInt("count")

	return runTool(cmd, args, func(ctx context.Context, gen generator.PhotoGenerator, images []domain.ImageResource) ([]domain.ImageResource, error) {
		opts.Image = images[0]
		return gen.GenerateIDPhoto(ctx, opts)
	})
}

func runProduct(cmd *cobra.Command, args []string) error {
	scene, _ := cmd.Flags().GetString("scene")
	ratio, _ := cmd.Flags().GetString("aspect-ratio")
	opts := domain.DefaultProductShowcase(domain.ImageResource{}, domain.ImageResource{}, scene)
	opts.AspectRatio = domain.ProductRatio(ratio)
	opts.Count, _ = cmd.Flags().GetInt("count")

	return runTool(cmd, args, func(ctx context.Context, gen generator.PhotoGenerator, images []domain.ImageResource) ([]domain.ImageResource, error) {
		opts.Subject, opts.Product = images[0], images[1]
		return gen.GenerateProductShowcase(ctx, opts)
	})
}

func runRemoveObject(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("target")
	opts := domain.ObjectRemoval{Target: target}

	return runTool(cmd, args, func(ctx context.Context, gen generator.PhotoGenerator, images []domain.ImageResource) ([]domain.ImageResource, error) {
		opts.Image = images[0]
		out, err := gen.RemoveObject(ctx, opts)
		return []domain.ImageResource{out}, err
	})
}

func runHeadshot(cmd *cobra.Command, args []string) error {
	opts := domain.DefaultOfficeHeadshot(domain.ImageResource{})
	background, _ := cmd.Flags().GetString("background")
	ratio, _ := cmd.Flags().GetString("aspect-ratio")
	opts.Background = domain.HeadshotBackground(background)
	opts.AspectRatio = domain.FrameRatio(ratio)
	opts.Count, _ = cmd.Flags().GetInt("count")

	return runTool(cmd, args, func(ctx context.Context, gen generator.PhotoGenerator, images []domain.ImageResource) ([]domain.ImageResource, error) {
		opts.Image = images[0]
		return gen.GenerateOfficeHeadshot(ctx, opts)
	})
}

type toolFunc func(ctx context.Context, gen generator.PhotoGenerator, images []domain.ImageResource) ([]domain.ImageResource, error)

// runTool は入力画像を読み込み、fn で生成した画像を出力ディレクトリに保存します。
func runTool(cmd *cobra.Command, inputs []string, fn toolFunc) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, anyGCS(inputs...))
	if err != nil {
		return err
	}
	defer a.Close()

	images := make([]domain.ImageResource, 0, len(inputs))
	for _, uri := range inputs {
		img, err := a.loader.Load(ctx, uri)
		if err != nil {
			return userError(err)
		}
		images = append(images, img)
	}

	out, err := fn(ctx, a.gen, images)
	if err != nil {
		return userError(err)
	}

	paths, err := output.NewWriter(cfg.OutputDir, cmd.Name()).WriteAll(out)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}

// userError はエラーを利用者向けのメッセージに置き換えます。元のエラーはデバッグログに残します。
func userError(err error) error {
	slog.Debug("ツールの実行に失敗しました", "kind", generator.Classify(err).String(), "error", err)
	return errors.New(generator.UserMessage(err))
}
