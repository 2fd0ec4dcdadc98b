// Package scanner は Cisco IOS の設定から type-7 パスワードを探して復号します
package scanner

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"github.com/RavuAlHemio/cco7/internal/cco7/models"
	"github.com/RavuAlHemio/cco7/pkg/type7"
)

const maxLineLength = 1024 * 1024

var (
	// PasswordPattern は "<キーワード> 7 <type-7>" 形式の行に一致します
	// 例: "enable password 7 02050D480809", "key-string 7 070C285F4D06"
	PasswordPattern = regexp.MustCompile(`(?i)\b(password|secret|key-string|authentication-key|key|md5)\s+7\s+(\S+)`)

	// NTPKeyPattern は "ntp authentication-key 1 md5 <type-7> 7" 形式の行に一致します
	NTPKeyPattern = regexp.MustCompile(`(?i)\bauthentication-key\s+\d+\s+(md5)\s+(\S+)\s+7\b`)
)

// ConfigScanner は機器設定のテキストを解析します
type ConfigScanner struct{}

// NewConfigScanner は新しいConfigScannerを作成します
func NewConfigScanner() *ConfigScanner {
	return &ConfigScanner{}
}

// Scan は設定のテキストから type-7 パスワードを探し、見つかった順に返します。
// 復号に失敗したものも Error を設定して返します。
func (s *ConfigScanner) Scan(text string) ([]*models.Finding, error) {
	var findings []*models.Finding

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		// コメント行
		if strings.HasPrefix(strings.TrimSpace(line), "!") {
			continue
		}

		for _, match := range matchLine(line) {
			findings = append(findings, decodeFinding(lineNo, match[1], match[2]))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanError, err)
	}

	return findings, nil
}

// matchLine は行の中の一致をすべて返します (各要素はキーワードと type-7 文字列)
func matchLine(line string) [][]string {
	if m := NTPKeyPattern.FindStringSubmatch(line); m != nil {
		return [][]string{m}
	}
	return PasswordPattern.FindAllStringSubmatch(line, -1)
}

func decodeFinding(lineNo int, keyword, token string) *models.Finding {
	finding := &models.Finding{
		Line:    lineNo,
		Keyword: strings.ToLower(keyword),
		Type7:   token,
	}

	plain, err := type7.Decode(token)
	if err != nil {
		finding.Error = err.Error()
	} else {
		finding.Plain = plain
	}
	return finding
}
