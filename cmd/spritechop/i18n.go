// Package main provides localization for the spritechop CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input and Output": "入出力",
		"Frames":           "フレーム",
		"Animation":        "アニメーション",
		"Configuration":    "設定",
		"Debug":            "デバッグ",
		"Logging":          "ログ",

		// Root command
		"Cut frames out of a sprite sheet into an animated GIF": "スプライトシートからフレームを切り出してアニメーションGIFを作成",

		// Input/Output flags
		"Sprite sheet image (PNG, JPEG, GIF, BMP, TIFF, WebP)": "スプライトシート画像（PNG, JPEG, GIF, BMP, TIFF, WebP）",
		"Output GIF file path":                                  "出力GIFファイルパス",

		// Frame flags
		"Frame size as WxH":                        "フレームサイズ（幅x高さ）",
		"Rescale frames to WxH (nearest neighbor)": "フレームを幅x高さに拡大縮小（ニアレストネイバー）",
		"frame size":                               "フレームサイズ",

		// Animation flags
		"Delay per frame in centiseconds":           "フレームごとの表示時間（1/100秒）",
		"Color to make transparent (hex RRGGBB)":    "透過させる色（16進数 RRGGBB）",
		"Loop count (0 = forever, -1 = play once)": "ループ回数（0 = 無限、-1 = 1回のみ再生）",

		// Configuration flags
		"YAML configuration file": "YAML設定ファイル",
		"Write a run summary to file (Markdown for .md, YAML otherwise)": "実行サマリーをファイルに出力（.mdならMarkdown、それ以外はYAML）",

		// Debug flags
		"Enable debug output":        "デバッグ出力を有効化",
		"Directory for debug output": "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Runtime messages
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",

		// Summary content
		"Animation Summary": "アニメーションサマリー",
		"Generated":         "生成日時",
		"Source":            "ソース",
		"Output":            "出力",
		"Path":              "パス",
		"Size":              "サイズ",
		"Frame Size":        "フレームサイズ",
		"Output Size":       "出力サイズ",
		"Delay":             "表示時間",
		"Loop":              "ループ",
		"Forever":           "無限",
		"Once":              "1回",
		"Transparent Color": "透過色",
		"None":              "なし",
		"Duration":          "再生時間",
	})
}
