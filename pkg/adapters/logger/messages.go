package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration
		"Loading sprite sheet %s":                 "スプライトシート %s を読み込み中",
		"Sprite sheet loaded: %s":                 "スプライトシートを読み込みました: %s",
		"Writing %d frame(s) of %s to %s":         "%d フレーム (%s) を %s に書き込み中",
		"Wrote %d frame(s) to %s (%s)":            "%d フレームを %s に書き込みました (%s)",
		"Removed partial output %s":               "不完全な出力 %s を削除しました",
		"Failed to remove partial output %s: %s":  "不完全な出力 %s の削除に失敗しました: %s",
		"Interrupted, shutting down...":           "中断されました。シャットダウン中...",
		"Summary written to %s":                   "サマリーを %s に書き込みました",
		"Debug output enabled in %s":              "デバッグ出力を %s に保存します",

		// Stages
		"Extracted frame %d at %s":                "フレーム %d を %s から切り出しました",
		"Rescaling frames from %s to %s":          "フレームを %s から %s に拡大縮小します",
		"Colorkey #%02x%02x%02x":                  "透過色 #%02x%02x%02x",
		"Encoded frame %d (%d cs)":                "フレーム %d をエンコードしました (%d cs)",
		"Decoded %s image, %dx%d":                 "%s 画像をデコードしました (%dx%d)",
		"Palette overflow, dithering frame %d":    "パレットが不足したためフレーム %d をディザリングします",

		// Warnings
		"Failed to save debug frame %d: %s":       "デバッグフレーム %d の保存に失敗しました: %s",
		"Failed to save debug overlay: %s":        "デバッグオーバーレイの保存に失敗しました: %s",

		// Errors
		"Error: %s":                               "エラー: %s",
	})
}
