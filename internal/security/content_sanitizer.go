// Package security はアプリケーションのセキュリティ機能を提供する。
//
// ContentSanitizerService は管理者が入力する求人本文をサニタイズし、
// 公開ページ閲覧者をXSS攻撃などのセキュリティリスクから保護する。
// bluemondayライブラリを使用した許可リストベースのポリシーで、
// 安全なタグと属性のみを通過させる。
package security

import (
	"github.com/microcosm-cc/bluemonday"
)

// ContentSanitizerService は求人本文のサニタイズ機能のインターフェースを定義する。
// 求人の作成・更新時、ストアへの保存前に使用される。
type ContentSanitizerService interface {
	// Sanitize は本文をサニタイズして安全なテキストを返す。
	// 許可タグ（p, br, a, ul, ol, li, strong, em）のみを通過させ、
	// script, iframe, styleタグおよびon*イベント属性を除去する。
	// aタグにはtarget="_blank"とrel="noopener noreferrer"が自動付与される。
	// タグを含まないプレーンテキストはそのまま通過する。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(raw string) string
}

// contentSanitizer はContentSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type contentSanitizer struct {
	policy *bluemonday.Policy
}

// NewContentSanitizer はContentSanitizerServiceの新しいインスタンスを生成する。
// 初期化時にbluemondayのカスタムポリシーを構築する。
// ポリシーの内容:
//   - 許可タグ: p, br, a, ul, ol, li, strong, em
//   - 禁止タグ: script, iframe, style および全てのon*イベント属性
//   - aタグ: target="_blank" と rel="noopener noreferrer" を自動付与
func NewContentSanitizer() *contentSanitizer {
	p := bluemonday.NewPolicy()

	// 求人本文で使う最小限の整形タグのみ許可する。
	// script, iframe, style等は許可リストに含めないことで自動的に除去される。
	// on*イベント属性はbluemondayのデフォルトで許可されないため除去される。
	p.AllowElements(
		"p", "br", "ul", "ol", "li",
		"strong", "em",
	)

	// aタグの設定:
	// - href属性を許可（完全修飾URLのみ）
	// - target="_blank"を全リンクに強制付与
	// - rel="noreferrer noopener"を強制付与
	p.AllowAttrs("href").OnElements("a")
	p.AllowStandardURLs()
	p.AllowRelativeURLs(false)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)

	return &contentSanitizer{
		policy: p,
	}
}

// Sanitize は本文をサニタイズして安全なテキストを返す。
func (s *contentSanitizer) Sanitize(raw string) string {
	return s.policy.Sanitize(raw)
}
