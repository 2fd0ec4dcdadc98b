// Package models は cco7 コマンドで使用するデータモデルを定義します
package models

// Result は decode / encode 1 件分の結果を表します
type Result struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Salt   *int   `json:"salt,omitempty"` // encode の場合のみ
	Error  string `json:"error,omitempty"`
}

// Failed は処理に失敗したかどうかを返します
func (r *Result) Failed() bool {
	return r.Error != ""
}

// Finding は機器設定の中で見つかった type-7 パスワードを表します
type Finding struct {
	Line    int    `json:"line"`
	Keyword string `json:"keyword"` // password, key-string など
	Type7   string `json:"type7"`
	Plain   string `json:"plain,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Report は 1 ファイル分の scan 結果を表します
type Report struct {
	Path     string     `json:"path"`
	Findings []*Finding `json:"findings"`
	Error    string     `json:"error,omitempty"`
}

// Failed はファイルの読み込みや解析に失敗したかどうかを返します
func (r *Report) Failed() bool {
	return r.Error != ""
}
